package impl

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"localdeal/config"
	deliverycontext "localdeal/internal/delivery/context"
	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	"localdeal/internal/domain/service"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	offerImagePrefix      = "offers/"
	defaultImageName      = "image"
	defaultMaxImageBytes  = 5 * bytes.MB
	maxImageFilenameChars = 100
)

var (
	allowedImageTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/png":  {},
		"image/webp": {},
	}

	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

type ownerOfferService struct {
	offerRepo     repository.OfferRepository
	businessRepo  repository.BusinessRepository
	storage       service.ImageStorage
	publisher     service.EventPublisher
	presenter     offerPresenter
	maxImageBytes int64
	now           func() time.Time
	logger        *slog.Logger
}

// OwnerOfferServiceParams holds dependencies for OwnerOfferService, injected by Fx.
type OwnerOfferServiceParams struct {
	fx.In

	OfferRepo    repository.OfferRepository
	BusinessRepo repository.BusinessRepository
	Storage      service.ImageStorage
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOwnerOfferService creates the owner side of offers.
func NewOwnerOfferService(params OwnerOfferServiceParams) (usecase.OwnerOfferUsecase, error) {
	maxImageBytes := int64(defaultMaxImageBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageSize != "" {
		parsed, err := bytes.Parse(params.Config.Storage.MaxImageSize)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid storage.maxImageSize %q", params.Config.Storage.MaxImageSize)
		}
		maxImageBytes = parsed
	}

	return &ownerOfferService{
		offerRepo:     params.OfferRepo,
		businessRepo:  params.BusinessRepo,
		storage:       params.Storage,
		publisher:     params.Publisher,
		presenter:     newOfferPresenter(params.Config),
		maxImageBytes: maxImageBytes,
		now:           time.Now,
		logger:        params.Logger,
	}, nil
}

func (srv *ownerOfferService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOwnerOffers lists the offers of the owner's business. Owners without a business have none.
func (srv *ownerOfferService) ListOwnerOffers(ctx context.Context, ownerID uuid.UUID) ([]*usecase.OfferDetail, error) {
	business, err := srv.businessRepo.FindByOwnerID(ctx, ownerID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return []*usecase.OfferDetail{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	offers, err := srv.offerRepo.FindByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	return srv.presenter.details(offers, map[uuid.UUID]*entity.Business{business.ID: business}), nil
}

// CreateOffer uploads the optional image first and writes the offer only after the upload succeeded.
func (srv *ownerOfferService) CreateOffer(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateOfferInput) (*usecase.OfferDetail, error) {
	form := input.Form.Normalize()
	if result := entity.ValidateOfferForm(form); !result.Valid() {
		return nil, domainerrors.NewValidationError(result.FieldErrors)
	}

	business, err := srv.ownerBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	imageURL, imageKey, err := srv.uploadImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	offer := entity.NewOfferFromForm(business, form, imageURL)
	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		srv.log(ctx).Error("Failed to create offer", slog.Any("businessID", business.ID), slog.Any("error", err))
		srv.removeImage(ctx, imageKey)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	srv.log(ctx).Info("Offer created",
		slog.Any("offerID", offer.ID),
		slog.Any("businessID", business.ID),
		slog.String("city", offer.City),
	)

	srv.publishOfferEvent(ctx, ownerID, business, offer)

	return srv.presenter.detail(offer, business), nil
}

// UpdateOffer merges the changed fields into the owner's offer, optionally replacing its image.
func (srv *ownerOfferService) UpdateOffer(ctx context.Context, ownerID, offerID uuid.UUID, input *usecase.UpdateOfferInput) (*usecase.OfferDetail, error) {
	business, offer, err := srv.ownedOffer(ctx, ownerID, offerID)
	if err != nil {
		return nil, err
	}

	form := mergeOfferForm(offer.Form(), input).Normalize()
	if result := entity.ValidateOfferForm(form); !result.Valid() {
		return nil, domainerrors.NewValidationError(result.FieldErrors)
	}

	oldImageURL := offer.ImageURL
	newImageURL, newImageKey, err := srv.uploadImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	offer.ApplyForm(form)
	if newImageURL != "" {
		offer.ImageURL = newImageURL
	}

	if err := srv.offerRepo.Update(ctx, offer); err != nil {
		srv.log(ctx).Error("Failed to update offer", slog.Any("offerID", offerID), slog.Any("error", err))
		srv.removeImage(ctx, newImageKey)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update offer")
	}

	if newImageURL != "" && oldImageURL != "" {
		if key, ok := srv.storage.KeyFromURL(oldImageURL); ok {
			srv.removeImage(ctx, key)
		}
	}

	return srv.presenter.detail(offer, business), nil
}

// DeleteOffer removes the owner's offer. The image is cleaned up best-effort.
func (srv *ownerOfferService) DeleteOffer(ctx context.Context, ownerID, offerID uuid.UUID, confirmed bool) error {
	if !confirmed {
		return domainerrors.ErrConfirmationRequired
	}

	_, offer, err := srv.ownedOffer(ctx, ownerID, offerID)
	if err != nil {
		return err
	}

	if err := srv.offerRepo.Delete(ctx, offer.ID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return errors.Wrap(domainerrors.ErrOfferNotFound, offerID.String())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete offer")
	}

	if offer.ImageURL != "" {
		if key, ok := srv.storage.KeyFromURL(offer.ImageURL); ok {
			srv.removeImage(ctx, key)
		}
	}

	srv.log(ctx).Info("Offer deleted", slog.Any("offerID", offerID), slog.Any("ownerID", ownerID))

	return nil
}

func (srv *ownerOfferService) ownerBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByOwnerID(ctx, ownerID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrBusinessRequired
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load business")
	}

	return business, nil
}

// ownedOffer loads an offer and checks it belongs to the owner's business.
func (srv *ownerOfferService) ownedOffer(ctx context.Context, ownerID, offerID uuid.UUID) (*entity.Business, *entity.Offer, error) {
	offer, err := findOffer(ctx, srv.offerRepo, offerID)
	if err != nil {
		return nil, nil, err
	}

	business, err := srv.businessRepo.FindByOwnerID(ctx, ownerID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, nil, domainerrors.ErrForbidden.WrapMessage("owner has no business")
	}
	if err != nil {
		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to load business")
	}

	if offer.BusinessID != business.ID {
		srv.log(ctx).Warn("Owner tried to modify a foreign offer",
			slog.Any("ownerID", ownerID),
			slog.Any("offerID", offerID),
		)

		return nil, nil, domainerrors.ErrForbidden.WrapMessage("offer belongs to another business")
	}

	return business, offer, nil
}

// uploadImage stores the image and returns its public URL and key. A nil image uploads nothing.
func (srv *ownerOfferService) uploadImage(ctx context.Context, image *usecase.ImageUpload) (url, key string, err error) {
	if image == nil || len(image.Data) == 0 {
		return "", "", nil
	}

	if int64(len(image.Data)) > srv.maxImageBytes {
		return "", "", errors.Wrapf(domainerrors.ErrImageTooLarge, "%d bytes, limit %s", len(image.Data), bytes.Format(srv.maxImageBytes))
	}

	contentType := http.DetectContentType(image.Data)
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", "", errors.Wrap(domainerrors.ErrUnsupportedImageType, contentType)
	}

	key = offerImageKey(srv.now(), image.Filename)
	url, err = srv.storage.Upload(ctx, key, contentType, image.Data)
	if err != nil {
		srv.log(ctx).Error("Failed to upload offer image", slog.String("key", key), slog.Any("error", err))

		return "", "", errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
	}

	return url, key, nil
}

func (srv *ownerOfferService) removeImage(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := srv.storage.Delete(ctx, key); err != nil && !errors.Is(err, service.ErrImageNotFound) {
		srv.log(ctx).Warn("Failed to delete offer image", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *ownerOfferService) publishOfferEvent(ctx context.Context, ownerID uuid.UUID, business *entity.Business, offer *entity.Offer) {
	event := &service.OfferPublishedEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		OfferID:         offer.ID.String(),
		BusinessID:      business.ID.String(),
		OwnerID:         ownerID.String(),
		BusinessName:    business.Name,
		Title:           offer.Title,
		City:            offer.City,
		Category:        offer.Category,
		OriginalPrice:   offer.OriginalPrice,
		DiscountedPrice: offer.DiscountedPrice,
		DiscountPercent: offer.DiscountPercent(),
		ValidUntil:      offer.ValidUntil,
		PublishedAt:     srv.now().UTC(),
	}

	if err := srv.publisher.PublishOfferEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish offer event", slog.Any("offerID", offer.ID), slog.Any("error", err))
	}
}

func mergeOfferForm(form entity.OfferForm, input *usecase.UpdateOfferInput) entity.OfferForm {
	if input.Title != nil {
		form.Title = *input.Title
	}
	if input.Description != nil {
		form.Description = *input.Description
	}
	if input.OriginalPrice != nil {
		form.OriginalPrice = *input.OriginalPrice
	}
	if input.DiscountedPrice != nil {
		form.DiscountedPrice = *input.DiscountedPrice
	}
	if input.Category != nil {
		form.Category = *input.Category
	}
	if input.ValidUntil != nil {
		form.ValidUntil = *input.ValidUntil
	}

	return form
}

// offerImageKey builds offers/<unix-millis>_<sanitised filename>.
func offerImageKey(now time.Time, filename string) string {
	name := unsafeFilenameChars.ReplaceAllString(filepath.Base(strings.TrimSpace(filename)), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = defaultImageName
	}
	if len(name) > maxImageFilenameChars {
		name = name[len(name)-maxImageFilenameChars:]
	}

	return offerImagePrefix + strconv.FormatInt(now.UnixMilli(), 10) + "_" + name
}
