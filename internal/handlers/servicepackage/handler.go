package servicepackage

import (
	"furever/infras/otel"
	"furever/internal/domains/servicepackage/model"
	"furever/internal/domains/servicepackage/model/dto"
	"furever/internal/domains/servicepackage/service"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	"furever/shared/failure"
	"furever/shared/validator"
	"furever/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ServicePackage
	otel    otel.Otel
}

func New(service service.ServicePackage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/packages", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Get("/{id}", handler.Get)
	})

	r.Route("/cremation/packages", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

func packageID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("id must be a number")
	}

	return id, nil
}

// GetAll handles the public package catalog listing
// @Summary Get service packages
// @Description Retrieve active service packages, optionally filtered by provider or name.
// @Tags ServicePackage
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param provider_id query int false "Filter by provider"
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetPackagesResponse "Packages retrieved successfully"
// @Failure 500 {object} response.Error
// @Router /v1/packages [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if providerID := r.URL.Query().Get(constant.RequestParamProviderID); providerID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldProviderID,
			Value:    providerID,
			Operator: gDto.FilterOperatorEq,
		})
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldName,
			Value:    name,
			Operator: gDto.FilterOperatorLike,
		})
	}

	res, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Packages retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Get handles fetching a single package
// @Summary Get a service package
// @Description Retrieve a service package by its ID.
// @Tags ServicePackage
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} dto.PackageResponse "Package retrieved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackage")
	defer scope.End()

	id, err := packageID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Create handles package creation by a provider
// @Summary Create a service package
// @Description Create a new service package under the authenticated provider.
// @Tags ServicePackage
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Create Package Request"
// @Success 201 {object} response.Message "Package created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cremation/packages [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackage")
	defer scope.End()

	req := dto.CreatePackageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package created successfully")

	response.WithMessage(w, http.StatusCreated, "Package created successfully")
}

// Update handles package updates by its owning provider
// @Summary Update a service package
// @Description Update a service package owned by the authenticated provider.
// @Tags ServicePackage
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param request body dto.UpdatePackageRequest true "Update Package Request"
// @Success 200 {object} response.Message "Package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cremation/packages/{id} [put]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePackage")
	defer scope.End()

	id, err := packageID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdatePackageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package updated successfully")

	response.WithMessage(w, http.StatusOK, "Package updated successfully")
}

// Delete handles package retirement by its owning provider
// @Summary Delete a service package
// @Description Deactivate a service package owned by the authenticated provider.
// @Tags ServicePackage
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} response.Message "Package deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cremation/packages/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePackage")
	defer scope.End()

	id, err := packageID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package deleted successfully")

	response.WithMessage(w, http.StatusOK, "Package deleted successfully")
}
