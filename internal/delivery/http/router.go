package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communityguestbook/internal/delivery/http/controllers"
	"communityguestbook/internal/delivery/http/middleware"
	"communityguestbook/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// The unlock and delete routes are GET because they are followed from links
// in the moderation mail; the delete route still requires the explicit
// confirmed flag before anything is removed.
func NewRouter(guestbook *controllers.GuestbookController, contact *controllers.ContactController, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()

	// Guestbook
	mux.HandleFunc("GET /guestbook/{scopeID}/entries", guestbook.List)
	mux.HandleFunc("POST /guestbook/{scopeID}/entries", guestbook.Submit)
	mux.HandleFunc("GET /guestbook/{scopeID}/unlock", guestbook.Unlock)
	mux.HandleFunc("GET /guestbook/{scopeID}/delete", guestbook.Delete)

	requireAuth := middleware.RequireAuth(verifier)
	mux.HandleFunc("DELETE /guestbook/{scopeID}/entries/{entryID}", requireAuth(guestbook.AdminDelete))

	// Contact
	mux.HandleFunc("GET /contacts", contact.Directory)
	mux.HandleFunc("POST /contact", contact.SubmitMessage)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
