package dto

import (
	"furever/internal/domains/servicepackage/model"
	"furever/shared"
	gDto "furever/shared/dto"
	gModel "furever/shared/model"
	"furever/shared/timezone"
)

type AddOnRequest struct {
	Name  string  `json:"name"  validate:"required,max=100"`
	Price float64 `json:"price" validate:"gte=0"`
}

type CreatePackageRequest struct {
	Name        string         `json:"name"        validate:"required,max=150"`
	Description *string        `json:"description,omitempty"`
	Price       float64        `json:"price"       validate:"required,gt=0"`
	Inclusions  []string       `json:"inclusions,omitempty"`
	AddOns      []AddOnRequest `json:"addons,omitempty"     validate:"omitempty,dive"`
	Images      []string       `json:"images,omitempty"`
}

func (r *CreatePackageRequest) ToModel(providerID int64, username string) model.ServicePackage {
	addons := make(model.AddOnList, len(r.AddOns))
	for i, a := range r.AddOns {
		addons[i] = model.AddOn{Name: a.Name, Price: a.Price}
	}

	return model.ServicePackage{
		ProviderID:  providerID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Inclusions:  model.StringList(r.Inclusions),
		AddOns:      addons,
		Images:      model.StringList(r.Images),
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdatePackageRequest struct {
	Name        *string  `db:"name"        json:"name,omitempty"        validate:"omitempty,max=150"`
	Description *string  `db:"description" json:"description,omitempty"`
	Price       *float64 `db:"price"       json:"price,omitempty"       validate:"omitempty,gt=0"`
	Active      *bool    `db:"active"      json:"active,omitempty"`
}

type PackageResponse struct {
	ID          int64         `json:"id"`
	ProviderID  int64         `json:"provider_id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Inclusions  []string      `json:"inclusions"`
	AddOns      []model.AddOn `json:"addons"`
	Images      []string      `json:"images"`
	Active      bool          `json:"active"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(mod model.ServicePackage) {
	r.ID = mod.ID
	r.ProviderID = mod.ProviderID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Price = mod.Price
	r.Inclusions = mod.Inclusions
	r.AddOns = mod.AddOns
	r.Images = mod.Images
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)

	if r.Inclusions == nil {
		r.Inclusions = []string{}
	}

	if r.AddOns == nil {
		r.AddOns = []model.AddOn{}
	}

	if r.Images == nil {
		r.Images = []string{}
	}
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.ServicePackage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, mod := range models {
		r.Packages[i].FromModel(mod)
	}
}
