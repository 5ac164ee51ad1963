package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hVoice *VoiceHandler,
	hPage *PageHandler,
	metricsHandler http.Handler,
	postsPerMinute int,
) {
	r.Get("/_ah/warmup", hPage.Warmup)
	r.Get("/health", hPage.Health)
	r.Handle("/metrics", metricsHandler)

	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		pr.Get("/", hPage.Index)
		pr.Get("/get_audio", hVoice.GetAudio)
		pr.Post("/get_audio", hVoice.GetAudio)

		// --- pipeline ---
		// over-limit clients get the limiter's plain-text 429, not the JSON error shape
		pr.Group(func(lr chi.Router) {
			if postsPerMinute > 0 {
				lr.Use(httputil.NewRateLimiter(postsPerMinute, time.Minute))
			}
			lr.Post("/upload", hVoice.Upload)
			lr.Post("/analyze", hVoice.Analyze)
		})
	})
}
