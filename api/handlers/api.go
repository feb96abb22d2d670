package handlers

import (
	"context"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/biit/biit-api/api"
	"github.com/biit/biit-api/config"
	"github.com/biit/biit-api/databases"
	"github.com/biit/biit-api/identity"
	"github.com/biit/biit-api/notify"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Pipeline api.Pipeline
	dbHelper databases.DatabaseHelper
	client   databases.ClientHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	return NewRouter(
		a.Pipeline,
		Community{DB: databases.NewCommunityDatabase(a.dbHelper), SDB: databases.NewCommunityStatsDatabase(a.dbHelper)},
		Meeting{DB: databases.NewMeetingDatabase(a.dbHelper)},
		Feedback{DB: databases.NewFeedbackDatabase(a.dbHelper)},
	)
}

// NewRouter registers every route against the given handlers
func NewRouter(p api.Pipeline, c Community, m Meeting, f Feedback) *mux.Router {
	r := mux.NewRouter()
	// mux skips middleware for this handler
	r.MethodNotAllowedHandler = api.RequestLogger(p.MethodNotAllowed())
	r.Use(api.RequestLogger)

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler).Methods("GET")

	r.Handle("/community", p.Handle(api.Body, []string{"name", "codeofconduct", "Admins", "Members", "mpm", "meettype"}, c.CreateCommunityHandler)).Methods("POST")
	r.Handle("/community", p.Handle(api.Query, []string{"name"}, c.CommunityHandler)).Methods("GET")
	r.Handle("/community", p.Handle(api.Query, []string{"name", "email", "updateFields"}, c.UpdateCommunityHandler)).Methods("PUT")
	r.Handle("/community", p.Handle(api.Query, []string{"name", "email"}, c.DeleteCommunityHandler)).Methods("DELETE")
	r.Handle("/community/{name}/stats", p.Handle(api.Query, nil, c.CommunityStatsHandler)).Methods("GET")
	r.Handle("/community/{name}/join", p.Handle(api.Body, []string{"email"}, c.JoinCommunityHandler)).Methods("POST")
	r.Handle("/community/{name}/leave", p.Handle(api.Body, []string{"email"}, c.LeaveCommunityHandler)).Methods("POST")

	r.Handle("/meeting", p.Handle(api.Body, []string{"timestamp", "location", "user_list", "meettype", "duration"}, m.CreateMeetingHandler)).Methods("POST")
	r.Handle("/meeting", p.Handle(api.Query, []string{"id"}, m.MeetingHandler)).Methods("GET")
	r.Handle("/meeting", p.Handle(api.Query, []string{"id", "updateFields"}, m.UpdateMeetingHandler)).Methods("PUT")
	r.Handle("/meeting", p.Handle(api.Query, []string{"id"}, m.DeleteMeetingHandler)).Methods("DELETE")
	r.Handle("/meeting/user", p.Handle(api.Query, []string{"id", "email", "function"}, m.MeetingUserHandler)).Methods("PUT")

	r.Handle("/feedback", p.Handle(api.Body, []string{"email", "title", "text", "feedback_type", "feedback_status"}, f.CreateFeedbackHandler)).Methods("POST")
	r.Handle("/feedback", p.Handle(api.Query, []string{"email", "id"}, f.FeedbackHandler)).Methods("GET")
	r.Handle("/feedback", p.Handle(api.Query, []string{"email", "id"}, f.DeleteFeedbackHandler)).Methods("DELETE")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	zap.S().Info("biit-api has connected to the database")

	a.Pipeline = api.Pipeline{
		Gate:      api.AuthGate{Refresher: identity.NewRefresher(a.Config.OAuth)},
		Responder: api.TextResponder{Notifier: a.notifier()},
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

// DB returns the database the app is connected to
func (a *App) DB() databases.DatabaseHelper {
	return a.dbHelper
}

// Close disconnects from the database
func (a *App) Close() error {
	if a.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.client.Disconnect(ctx)
}

// notifier fans alerts out to the log and to every configured channel
func (a *App) notifier() notify.Notifier {
	n := notify.Multi{notify.LogNotifier{}}
	if a.Config.SendGridAPIKey != "" && a.Config.AlertEmailTo != "" {
		n = append(n, notify.NewSendGridNotifier(a.Config.SendGridAPIKey, a.Config.AlertEmailFrom, a.Config.AlertEmailTo))
	}
	if a.Config.DiscordWebhookURL != "" {
		n = append(n, notify.NewDiscordNotifier(a.Config.DiscordWebhookURL))
	}
	return notify.Async(n)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}
