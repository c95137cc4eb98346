package impl

import (
	"context"
	"strings"
	"time"

	"localdeal/config"
	"localdeal/internal/domain/entity"
	"localdeal/internal/domain/repository"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultShareScheme = "localdeal://offers/"

// offerPresenter derives the read-time fields of offers.
type offerPresenter struct {
	countryCode  string
	shareBaseURL string
	now          func() time.Time
}

func newOfferPresenter(cfg *config.Config) offerPresenter {
	p := offerPresenter{now: time.Now}
	if cfg == nil {
		return p
	}
	if cfg.Contact != nil {
		p.countryCode = cfg.Contact.CountryCode
	}
	if cfg.Offers != nil {
		p.shareBaseURL = strings.TrimRight(cfg.Offers.ShareBaseURL, "/")
	}

	return p
}

func (p offerPresenter) shareURL(offerID uuid.UUID) string {
	if p.shareBaseURL == "" {
		return defaultShareScheme + offerID.String()
	}

	return p.shareBaseURL + "/" + offerID.String()
}

func (p offerPresenter) detail(offer *entity.Offer, business *entity.Business) *usecase.OfferDetail {
	now := p.now()
	detail := &usecase.OfferDetail{
		Offer:           offer,
		DiscountPercent: offer.DiscountPercent(),
		IsExpired:       offer.IsExpired(now),
		IsExpiringSoon:  offer.IsExpiringSoon(now),
		DaysLeft:        offer.DaysLeft(now),
		ShareURL:        p.shareURL(offer.ID),
	}
	if business != nil {
		detail.BusinessName = business.Name
		detail.Contact = entity.BusinessContactLinks(business, p.countryCode, entity.OfferWhatsAppMessage(offer))
	}

	return detail
}

func (p offerPresenter) details(offers []*entity.Offer, businesses map[uuid.UUID]*entity.Business) []*usecase.OfferDetail {
	result := make([]*usecase.OfferDetail, 0, len(offers))
	for _, offer := range offers {
		result = append(result, p.detail(offer, businesses[offer.BusinessID]))
	}

	return result
}

// loadBusinesses batch-loads the businesses owning offers.
func loadBusinesses(ctx context.Context, repo repository.BusinessRepository, offers []*entity.Offer) (map[uuid.UUID]*entity.Business, error) {
	result := make(map[uuid.UUID]*entity.Business)
	if len(offers) == 0 {
		return result, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(offers))
	ids := make([]uuid.UUID, 0, len(offers))
	for _, offer := range offers {
		if _, ok := seen[offer.BusinessID]; ok {
			continue
		}
		seen[offer.BusinessID] = struct{}{}
		ids = append(ids, offer.BusinessID)
	}

	businesses, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load businesses")
	}
	for _, b := range businesses {
		result[b.ID] = b
	}

	return result, nil
}
