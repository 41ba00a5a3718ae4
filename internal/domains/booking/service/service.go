package service

import (
	"context"
	"fmt"
	"furever/config"
	"furever/infras/mysql"
	"furever/infras/otel"
	availModel "furever/internal/domains/availability/model"
	availRepo "furever/internal/domains/availability/repository"
	"furever/internal/domains/booking/model"
	"furever/internal/domains/booking/model/dto"
	"furever/internal/domains/booking/repository"
	outboxModel "furever/internal/domains/outbox/model"
	outboxRepo "furever/internal/domains/outbox/repository"
	petModel "furever/internal/domains/pet/model"
	petRepo "furever/internal/domains/pet/repository"
	providerModel "furever/internal/domains/provider/model"
	providerRepo "furever/internal/domains/provider/repository"
	refundRepo "furever/internal/domains/refund/repository"
	packageModel "furever/internal/domains/servicepackage/model"
	packageRepo "furever/internal/domains/servicepackage/repository"
	userModel "furever/internal/domains/user/model"
	userRepo "furever/internal/domains/user/repository"
	"furever/shared"
	"furever/shared/cache"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	"furever/shared/failure"
	gModel "furever/shared/model"
	"furever/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

const reminderLead = 24 * time.Hour

// allowedTransitions is the provider-facing status machine. Cancellation is
// only reachable before the cremation starts.
var allowedTransitions = map[string][]string{
	model.StatusPending:    {model.StatusConfirmed, model.StatusCancelled},
	model.StatusConfirmed:  {model.StatusInProgress, model.StatusCancelled},
	model.StatusInProgress: {model.StatusCompleted},
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	CreateForUser(ctx context.Context, req dto.CreateForUserRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetForProvider(ctx context.Context, params gDto.QueryParams, status, bookingDate string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) error
	Cancel(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo         repository.Booking
	petRepo      petRepo.Pet
	providerRepo providerRepo.Provider
	packageRepo  packageRepo.ServicePackage
	userRepo     userRepo.User
	availRepo    availRepo.Availability
	refundRepo   refundRepo.Refund
	outboxRepo   outboxRepo.Outbox
	txer         mysql.Txer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	petRepository petRepo.Pet,
	providerRepository providerRepo.Provider,
	packageRepository packageRepo.ServicePackage,
	userRepository userRepo.User,
	availRepository availRepo.Availability,
	refundRepository refundRepo.Refund,
	outboxRepository outboxRepo.Outbox,
	txer mysql.Txer,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		petRepo:      petRepository,
		providerRepo: providerRepository,
		packageRepo:  packageRepository,
		userRepo:     userRepository,
		availRepo:    availRepository,
		refundRepo:   refundRepository,
		outboxRepo:   outboxRepository,
		txer:         txer,
		cfg:          cfg,
		cache:        redisCache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if missing := req.MissingFields(); len(missing) > 0 {
		return res, failure.MissingFields(missing)
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookingDate, err := timezone.Parse(constant.DateOnlyFormat, req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("booking_date must be YYYY-MM-DD")
	}

	pkg, err := s.validateReferences(ctx, userID, req.ProviderID, req.PackageID)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(userID, 0, bookingDate, pkg.Price)

	id, err := s.persist(ctx, booking, req.PetID, req.PetName, req.PetType, req.PetBreed, req.Addons)
	if err != nil {
		return res, err
	}

	booking.ID = id
	res.FromModel(booking)

	s.invalidate(ctx, id)

	log.Info().Int64("booking_id", id).Str("user_id", userID).Msg("booking created")

	return res, nil
}

// CreateForUser lets a provider register a booking on behalf of an existing
// fur-parent, e.g. one taken over the phone.
func (s *serviceImpl) CreateForUser(ctx context.Context, req dto.CreateForUserRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBookingForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	if missing := req.MissingFields(); len(missing) > 0 {
		return res, failure.MissingFields(missing)
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookingDate, err := timezone.Parse(constant.DateOnlyFormat, req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("booking_date must be YYYY-MM-DD")
	}

	if _, err = s.validateReferences(ctx, req.UserID, req.ProviderID, req.PackageID); err != nil {
		return res, err
	}

	booking := req.ToModel(0, bookingDate, actor)

	id, err := s.persist(ctx, booking, nil, req.PetName, req.PetType, req.PetBreed, req.Addons)
	if err != nil {
		return res, err
	}

	booking.ID = id
	res.FromModel(booking)

	s.invalidate(ctx, id)

	log.Info().Int64("booking_id", id).Str("user_id", req.UserID).Str("created_by", actor).Msg("booking created for user")

	return res, nil
}

// validateReferences confirms user, provider and package all exist before any
// row is written. A miss is a client error, not a constraint violation.
func (s *serviceImpl) validateReferences(ctx context.Context, userID string, providerID, packageID int64) (packageModel.ServicePackage, error) {
	exists, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user")

		return packageModel.ServicePackage{}, fmt.Errorf("failed to check user: %w", err)
	}

	if !exists {
		return packageModel.ServicePackage{}, failure.BadRequestFromString("user does not exist")
	}

	exists, err = s.providerRepo.Exist(ctx, shared.FilterByID(providerID, providerModel.FieldID, providerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check provider")

		return packageModel.ServicePackage{}, fmt.Errorf("failed to check provider: %w", err)
	}

	if !exists {
		return packageModel.ServicePackage{}, failure.BadRequestFromString("service provider does not exist")
	}

	pkg, err := s.packageRepo.Get(ctx, shared.FilterByID(packageID, packageModel.FieldID, packageModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service package")

		return packageModel.ServicePackage{}, fmt.Errorf("failed to get service package: %w", err)
	}

	if pkg.ID == 0 {
		return packageModel.ServicePackage{}, failure.BadRequestFromString("service package does not exist")
	}

	if pkg.ProviderID != providerID {
		return packageModel.ServicePackage{}, failure.BadRequestFromString("service package does not belong to the provider")
	}

	return pkg, nil
}

// persist runs the whole booking write in one transaction: pet, booking row,
// add-ons, slot consume, day flag and outbox events commit or roll back
// together.
func (s *serviceImpl) persist(ctx context.Context, booking model.Booking, petID *int64, petName, petType string, petBreed *string, addons []dto.AddonRequest) (id int64, err error) {
	slotDate := booking.BookingDate.Format(constant.DateOnlyFormat)

	err = s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		resolvedPetID, txErr := s.resolvePet(ctx, tx, booking.UserID, petID, petName, petType, petBreed, booking.CreatedBy)
		if txErr != nil {
			return txErr
		}

		booking.PetID = resolvedPetID

		id, txErr = s.repo.InsertTxID(ctx, tx, booking)
		if txErr != nil {
			return txErr
		}

		for _, addon := range addons {
			txErr = s.repo.InsertAddonTx(ctx, tx, model.Addon{
				BookingID: id,
				Name:      addon.Name,
				Price:     addon.Price,
				Metadata:  booking.Metadata,
			})
			if txErr != nil {
				return txErr
			}
		}

		if txErr = s.availRepo.ConsumeSlotTx(ctx, tx, booking.ProviderID, slotDate, booking.BookingTime); txErr != nil {
			return txErr
		}

		remaining, txErr := s.availRepo.CountSlotsTx(ctx, tx, booking.ProviderID, slotDate)
		if txErr != nil {
			return txErr
		}

		txErr = s.availRepo.UpsertDayTx(ctx, tx, availModel.DayAvailability{
			ProviderID:    booking.ProviderID,
			AvailableDate: booking.BookingDate,
			IsAvailable:   remaining > 0,
			Metadata:      booking.Metadata,
		})
		if txErr != nil {
			return txErr
		}

		return s.enqueueCreatedEvents(ctx, tx, id, booking)
	})

	if err != nil {
		log.Error().Err(err).Str("user_id", booking.UserID).Msg("failed to create booking")

		if failure.GetCode(err) >= 500 {
			return 0, fmt.Errorf("failed to create booking: %w", err)
		}

		return 0, err
	}

	return id, nil
}

func (s *serviceImpl) resolvePet(ctx context.Context, tx *sqlx.Tx, userID string, petID *int64, petName, petType string, petBreed *string, createdBy string) (int64, error) {
	if petID != nil {
		pet, err := s.petRepo.Get(ctx, shared.FilterByID(*petID, petModel.FieldID, petModel.TableName))
		if err != nil {
			return 0, fmt.Errorf("failed to get pet: %w", err)
		}

		if pet.ID == 0 || pet.UserID != userID {
			return 0, failure.BadRequestFromString("pet not found or not owned by the user")
		}

		return pet.ID, nil
	}

	return s.petRepo.InsertTxID(ctx, tx, petModel.Pet{
		UserID:  userID,
		Name:    petName,
		Species: petType,
		Breed:   petBreed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	})
}

// enqueueCreatedEvents writes the booking-created event and a reminder due
// 24h before the scheduled slot into the outbox, inside the booking tx.
func (s *serviceImpl) enqueueCreatedEvents(ctx context.Context, tx *sqlx.Tx, id int64, booking model.Booking) error {
	body := map[string]any{
		"booking_id":   id,
		"user_id":      booking.UserID,
		"provider_id":  booking.ProviderID,
		"booking_date": booking.BookingDate.Format(constant.DateOnlyFormat),
		"booking_time": booking.BookingTime,
		"price":        booking.Price,
	}

	eventKey := fmt.Sprintf("booking-%d", id)
	topic := s.cfg.Kafka.NotificationTopic

	created, err := outboxModel.NewEvent(topic, eventKey, outboxModel.EventBookingCreated, body, timezone.Now(), booking.CreatedBy)
	if err != nil {
		return err
	}

	if err = s.outboxRepo.InsertTx(ctx, tx, created); err != nil {
		return err
	}

	reminderAt := s.scheduledAt(booking).Add(-reminderLead)

	reminder, err := outboxModel.NewEvent(topic, eventKey, outboxModel.EventBookingReminder, body, reminderAt, booking.CreatedBy)
	if err != nil {
		return err
	}

	return s.outboxRepo.InsertTx(ctx, tx, reminder)
}

func (s *serviceImpl) scheduledAt(booking model.Booking) time.Time {
	value := booking.BookingDate.Format(constant.DateOnlyFormat) + " " + booking.BookingTime

	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05"} {
		if scheduled, err := timezone.Parse(layout, value); err == nil {
			return scheduled
		}
	}

	return booking.BookingDate
}

// GetAll is the admin listing. Reads never surface infrastructure errors:
// repository failures degrade to an empty list with a warning.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return s.degrade(err), nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return s.degrade(err), nil
	}

	ids := make([]int64, len(models))
	for i, mod := range models {
		ids[i] = mod.ID
	}

	addons, err := s.repo.GetAddons(ctx, ids)
	if err != nil {
		return s.degrade(err), nil
	}

	addonsByBooking := map[int64][]model.Addon{}
	for _, addon := range addons {
		addonsByBooking[addon.BookingID] = append(addonsByBooking[addon.BookingID], addon)
	}

	refunds, err := s.refundRepo.GetLatestForBookings(ctx, ids)
	if err != nil {
		return s.degrade(err), nil
	}

	res.FromModels(models, addonsByBooking, refunds, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) degrade(err error) dto.GetBookingsResponse {
	log.Error().Err(err).Msg("booking read degraded")

	var res dto.GetBookingsResponse

	if mysql.IsConnectivity(err) {
		res.Degraded(constant.WarningDatabaseUnavailable)
	} else {
		res.Degraded(constant.WarningBookingsUnavailable)
	}

	return res
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, params, filter)
}

func (s *serviceImpl) GetForProvider(ctx context.Context, params gDto.QueryParams, status, bookingDate string) (res dto.GetBookingsResponse, err error) {
	provider, err := s.currentProvider(ctx)
	if err != nil {
		return res, err
	}

	filters := []any{
		gDto.Filter{
			Field:    model.FieldProviderID,
			Operator: gDto.FilterOperatorEq,
			Value:    provider.ID,
			Table:    model.TableName,
		},
	}

	if status != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if bookingDate != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldBookingDate,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingDate,
			Table:    model.TableName,
		})
	}

	return s.GetAll(ctx, params, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters})
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, fmt.Sprintf("%d", id))

	// Cached responses skip the repository read, so ownership still has to be
	// checked against the cached row before it leaves the service.
	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		if err = s.authorizeRead(ctx, res.UserID, res.ProviderID); err != nil {
			return dto.BookingResponse{}, err
		}

		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.ownedBooking(ctx, id)
	if err != nil {
		return res, err
	}

	addons, err := s.repo.GetAddons(ctx, []int64{id})
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking addons")

		return res, fmt.Errorf("failed to get booking addons: %w", err)
	}

	refunds, err := s.refundRepo.GetLatestForBookings(ctx, []int64{id})
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking refund")

		return res, fmt.Errorf("failed to get booking refund: %w", err)
	}

	if refund, ok := refunds[id]; ok {
		res.FromModel(booking, addons, &refund)
	} else {
		res.FromModel(booking, addons, nil)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus is the provider-side lifecycle transition.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	provider, err := s.currentProvider(ctx)
	if err != nil {
		return err
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found")
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleAdmin && booking.ProviderID != provider.ID {
		return failure.ResourceRestrictedError()
	}

	if !transitionAllowed(booking.Status, req.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, req.Status))
	}

	if req.Status == model.StatusCancelled {
		return s.cancel(ctx, booking)
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}, shared.FilterByID(id, model.FieldID, model.TableName))

	if err != nil {
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.invalidate(ctx, id)

	log.Info().Int64("booking_id", id).Str("from", booking.Status).Str("to", req.Status).Msg("booking status updated")

	return nil
}

// Cancel is the fur-parent cancellation of their own booking.
func (s *serviceImpl) Cancel(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found")
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleAdmin && booking.UserID != userID {
		return failure.ResourceRestrictedError()
	}

	if booking.Status != model.StatusPending && booking.Status != model.StatusConfirmed {
		return failure.BadRequestFromString(fmt.Sprintf("cannot cancel a booking in status %s", booking.Status))
	}

	return s.cancel(ctx, booking)
}

// cancel flips the status, restores the consumed slot and enqueues the
// cancellation event in one transaction.
func (s *serviceImpl) cancel(ctx context.Context, booking model.Booking) error {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	slotDate := booking.BookingDate.Format(constant.DateOnlyFormat)

	err := s.txer.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		txErr := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: userID,
		}, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
		if txErr != nil {
			return txErr
		}

		txErr = s.availRepo.RestoreSlotTx(ctx, tx, availModel.TimeSlot{
			ProviderID: booking.ProviderID,
			SlotDate:   booking.BookingDate,
			StartTime:  booking.BookingTime,
			EndTime:    nextHour(booking.BookingTime),
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  userID,
				ModifiedBy: userID,
			},
		})
		if txErr != nil {
			return txErr
		}

		txErr = s.availRepo.UpsertDayTx(ctx, tx, availModel.DayAvailability{
			ProviderID:    booking.ProviderID,
			AvailableDate: booking.BookingDate,
			IsAvailable:   true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  userID,
				ModifiedBy: userID,
			},
		})
		if txErr != nil {
			return txErr
		}

		event, txErr := outboxModel.NewEvent(
			s.cfg.Kafka.NotificationTopic,
			fmt.Sprintf("booking-%d", booking.ID),
			outboxModel.EventBookingCancelled,
			map[string]any{
				"booking_id":   booking.ID,
				"user_id":      booking.UserID,
				"provider_id":  booking.ProviderID,
				"booking_date": slotDate,
				"booking_time": booking.BookingTime,
			},
			timezone.Now(),
			userID,
		)
		if txErr != nil {
			return txErr
		}

		return s.outboxRepo.InsertTx(ctx, tx, event)
	})

	if err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to cancel booking")

		if failure.GetCode(err) >= 500 {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		return err
	}

	s.invalidate(ctx, booking.ID)

	log.Info().Int64("booking_id", booking.ID).Msg("booking cancelled")

	return nil
}

func (s *serviceImpl) ownedBooking(ctx context.Context, id int64) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return model.Booking{}, failure.NotFound("booking not found")
	}

	if err := s.authorizeRead(ctx, booking.UserID, booking.ProviderID); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

// authorizeRead gates a single-booking read: admins see everything, providers
// their own bookings, fur parents theirs.
func (s *serviceImpl) authorizeRead(ctx context.Context, ownerID string, providerID int64) error {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch role {
	case constant.RoleAdmin:
		return nil
	case constant.RoleProvider:
		provider, err := s.currentProvider(ctx)
		if err != nil {
			return err
		}

		if providerID != provider.ID {
			return failure.ResourceRestrictedError()
		}

		return nil
	default:
		if ownerID != userID {
			return failure.ResourceRestrictedError()
		}

		return nil
	}
}

func (s *serviceImpl) currentProvider(ctx context.Context) (providerModel.Provider, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	provider, err := s.providerRepo.Get(ctx, shared.FilterByID(userID, providerModel.FieldUserID, providerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider profile")

		return providerModel.Provider{}, fmt.Errorf("failed to get provider profile: %w", err)
	}

	if provider.ID == 0 {
		return providerModel.Provider{}, failure.Forbidden("no provider profile for this account")
	}

	return provider, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, fmt.Sprintf("%d", id))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// nextHour derives a one-hour slot window end for a restored slot.
func nextHour(startTime string) string {
	for _, layout := range []string{constant.TimeOnlyFormat, "15:04:05"} {
		if parsed, err := time.Parse(layout, startTime); err == nil {
			return parsed.Add(time.Hour).Format(layout)
		}
	}

	return startTime
}
