package middleware

import (
	"context"
	"time"

	"github.com/go-kit/log"
	reqcontext "github.com/prajwalbharadwajbm/donatetracker/internal/context"
	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
	"github.com/prajwalbharadwajbm/donatetracker/internal/service"
)

// loggingMiddleware implements logging middleware for CampaignService
type loggingMiddleware struct {
	logger log.Logger
	next   service.CampaignService
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(logger log.Logger) func(service.CampaignService) service.CampaignService {
	return func(next service.CampaignService) service.CampaignService {
		return &loggingMiddleware{
			logger: logger,
			next:   next,
		}
	}
}

// logCall emits one logfmt line per service call with request metadata.
func (mw *loggingMiddleware) logCall(ctx context.Context, begin time.Time, method string, err error, extra ...interface{}) {
	logFields := []interface{}{
		"method", method,
		"request_id", reqcontext.GetRequestID(ctx),
		"took", time.Since(begin),
	}
	logFields = append(logFields, extra...)

	if remoteAddr := reqcontext.GetRemoteAddr(ctx); remoteAddr != "" {
		logFields = append(logFields, "remote_addr", remoteAddr)
	}

	if err != nil {
		logFields = append(logFields, "error", err.Error(), "success", false)
	} else {
		logFields = append(logFields, "success", true)
	}

	mw.logger.Log(logFields...)
}

func (mw *loggingMiddleware) List(ctx context.Context, query models.ListQuery) (campaigns []models.CampaignResponse, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, begin, "List", err,
			"search", query.Search,
			"sort", string(query.Sort),
			"campaigns_count", len(campaigns),
		)
	}(time.Now())

	return mw.next.List(ctx, query)
}

func (mw *loggingMiddleware) Get(ctx context.Context, id string) (campaign models.CampaignResponse, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, begin, "Get", err, "campaign_id", id)
	}(time.Now())

	return mw.next.Get(ctx, id)
}

func (mw *loggingMiddleware) Selected(ctx context.Context) (campaign models.CampaignResponse, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, begin, "Selected", err)
	}(time.Now())

	return mw.next.Selected(ctx)
}

func (mw *loggingMiddleware) Donate(ctx context.Context, id string, input models.DonationInput) (campaign models.CampaignResponse, err error) {
	defer func(begin time.Time) {
		// The donor name is deliberately not logged; anonymous donors
		// must not leak into log aggregators.
		mw.logCall(ctx, begin, "Donate", err,
			"campaign_id", id,
			"amount", input.Amount,
			"anonymous", input.Anonymous,
		)
	}(time.Now())

	return mw.next.Donate(ctx, id, input)
}

func (mw *loggingMiddleware) Create(ctx context.Context, draft models.CampaignDraft, image []byte, imageName string) (campaign models.CampaignResponse, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, begin, "Create", err,
			"title", draft.Title,
			"category", draft.Category,
			"goal", draft.Goal,
			"image_bytes", len(image),
		)
	}(time.Now())

	return mw.next.Create(ctx, draft, image, imageName)
}

func (mw *loggingMiddleware) UploadImage(ctx context.Context, image []byte, filename string) (url string, err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, begin, "UploadImage", err,
			"filename", filename,
			"image_bytes", len(image),
		)
	}(time.Now())

	return mw.next.UploadImage(ctx, image, filename)
}

func (mw *loggingMiddleware) SignUp(ctx context.Context, email, password, name string) (err error) {
	defer func(begin time.Time) {
		// Never log the password or the email.
		mw.logCall(ctx, begin, "SignUp", err)
	}(time.Now())

	return mw.next.SignUp(ctx, email, password, name)
}

func (mw *loggingMiddleware) Reload(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		mw.logCall(ctx, begin, "Reload", err)
	}(time.Now())

	return mw.next.Reload(ctx)
}

func (mw *loggingMiddleware) Categories(ctx context.Context) []string {
	return mw.next.Categories(ctx)
}

func (mw *loggingMiddleware) Notices(ctx context.Context) []service.Notice {
	return mw.next.Notices(ctx)
}
