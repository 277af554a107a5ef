package quote

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/luxefurnish/furnishbackend/models"
	"github.com/luxefurnish/furnishbackend/store"
)

// ErrMissingClientInfo is returned when a submission lacks the mandatory
// client name or email.
var ErrMissingClientInfo = errors.New("client name and email are required")

// SubmitInput is the client-supplied half of a quotation submission.
type SubmitInput struct {
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	ClientCompany   string
	Notes           string
	DiscountPercent float64
	TaxPercent      float64
}

// Service turns drafts into persisted quotations.
type Service struct {
	drafts     *DraftStore
	quotations *store.Collection[models.Quotation, *models.Quotation]
	now        func() time.Time
}

func NewService(drafts *DraftStore, quotations *store.Collection[models.Quotation, *models.Quotation]) *Service {
	return &Service{drafts: drafts, quotations: quotations, now: time.Now}
}

func (s *Service) Drafts() *DraftStore { return s.drafts }

// QuotationNumber builds the caller-facing quote reference: a QT prefix plus
// the submission instant in base36.
func QuotationNumber(at time.Time) string {
	return "QT-" + strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
}

// Submit freezes the draft into a Quotation: totals are computed once and
// persisted as a snapshot, validity runs 30 days from submission, and the
// scratch entry is cleared on success.
func (s *Service) Submit(ctx context.Context, draftID string, in SubmitInput) (models.Quotation, error) {
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.ClientEmail) == "" {
		return models.Quotation{}, ErrMissingClientInfo
	}

	d, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return models.Quotation{}, err
	}

	now := s.now().UTC()
	totals := CalculateTotals(d.Items, in.DiscountPercent, in.TaxPercent)

	q := models.Quotation{
		QuotationNumber: QuotationNumber(now),
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		ClientCompany:   in.ClientCompany,
		Notes:           in.Notes,
		Items:           d.Items,
		Subtotal:        totals.Subtotal,
		DiscountPercent: in.DiscountPercent,
		TaxPercent:      in.TaxPercent,
		Total:           totals.Total,
		ValidUntil:      now.AddDate(0, 0, 30).Format("2006-01-02"),
		Status:          models.QuotationStatusDraft,
	}

	created, err := s.quotations.Create(ctx, q)
	if err != nil {
		return models.Quotation{}, err
	}
	if err := s.drafts.Clear(ctx, draftID); err != nil {
		return models.Quotation{}, err
	}
	return created, nil
}
