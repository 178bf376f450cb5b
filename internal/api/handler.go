package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/luna/internal/chatstore"
	"github.com/terraincognita07/luna/internal/db"
	"github.com/terraincognita07/luna/internal/generation"
	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Dependencies struct {
	Database     *gorm.DB
	SecretKey    string
	Location     *time.Location
	CookieSecure bool
	Generator    generation.Generator
	ChatStore    chatstore.Store
	Log          *logger.Logger
}

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	log          *logger.Logger
	now          func() time.Time
	loginLimiter *attemptLimiter

	authService      *services.AuthService
	cycleService     *services.CycleService
	moodService      *services.MoodService
	healthService    *services.HealthService
	chatService      *services.ChatService
	challengeService *services.ChallengeService
	feedbackService  *services.FeedbackService
	exportService    *services.ExportService
	settingsService  *services.SettingsService
}

func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Database == nil {
		return nil, errors.New("database is required")
	}
	if len(deps.SecretKey) == 0 {
		return nil, errors.New("secret key is required")
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.ChatStore == nil {
		deps.ChatStore = chatstore.NewMemoryStore(2 * time.Hour)
	}

	repos := db.NewRepositories(deps.Database)
	log := deps.Log
	return &Handler{
		secretKey:    []byte(deps.SecretKey),
		location:     deps.Location,
		cookieSecure: deps.CookieSecure,
		log:          log,
		now:          time.Now,
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),

		authService:      services.NewAuthService(repos.Users, log),
		cycleService:     services.NewCycleService(repos.Users, log),
		moodService:      services.NewMoodService(repos.Moods, log),
		healthService:    services.NewHealthService(repos.Surveys, log),
		chatService:      services.NewChatService(deps.ChatStore, services.NewChatResponder(deps.Generator, log), log),
		challengeService: services.NewChallengeService(repos.Challenges, repos.Users, log),
		feedbackService:  services.NewFeedbackService(repos.Feedback, log),
		exportService:    services.NewExportService(repos.Moods),
		settingsService:  services.NewSettingsService(repos.Users, log),
	}, nil
}

// today is the current instant in the configured location.
func (handler *Handler) today() time.Time {
	return handler.now().In(handler.location)
}
