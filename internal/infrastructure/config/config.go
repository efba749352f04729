package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"plotsite/internal/domain/entities"
	"plotsite/internal/domain/selection"
	"plotsite/internal/usecase"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourceDynamoDB = "dynamodb"

	InquiryStoreDynamoDB = "dynamodb"
	InquiryStoreSQLite   = "sqlite"

	NotifierWeb3Forms = "web3forms"
	NotifierResend    = "resend"
)

// Config is everything the service reads from the environment at startup.
//
// Values are opaque connection parameters for the collaborators; nothing
// here is computed from them.
type Config struct {
	Port    int
	GinMode string

	CatalogSource   string
	PlotsTable      string
	StatusOverrides []entities.StatusOverride

	InquiryStore   string
	InquiriesTable string
	SQLitePath     string

	Notifier           string
	NotifierMock       bool
	Web3FormsAccessKey string
	Web3FormsURL       string
	ResendAPIKey       string
	ResendURL          string
	EmailFrom          string
	EmailTo            []string
	FromName           string

	Submission usecase.SubmissionPolicy
	Selection  selection.Controller

	SessionTTL      time.Duration
	CatalogCacheTTL time.Duration
}

// Load reads the environment. Missing keys fall back to local-friendly
// defaults; malformed values are an error.
func Load() (Config, error) {
	cfg := Config{
		GinMode:            os.Getenv("GIN_MODE"),
		CatalogSource:      strings.ToLower(getenvDefault("CATALOG_SOURCE", CatalogSourceStatic)),
		PlotsTable:         getenvDefault("PLOTS_TABLE", "plots"),
		InquiryStore:       strings.ToLower(getenvDefault("INQUIRY_STORE", InquiryStoreDynamoDB)),
		InquiriesTable:     getenvDefault("INQUIRIES_TABLE", "inquiries"),
		SQLitePath:         getenvDefault("SQLITE_PATH", "inquiries.db"),
		Notifier:           strings.ToLower(getenvDefault("NOTIFIER", NotifierWeb3Forms)),
		NotifierMock:       isTruthy(os.Getenv("NOTIFIER_MOCK")),
		Web3FormsAccessKey: os.Getenv("WEB3FORMS_ACCESS_KEY"),
		Web3FormsURL:       getenvDefault("WEB3FORMS_URL", "https://api.web3forms.com/submit"),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		ResendURL:          getenvDefault("RESEND_URL", "https://api.resend.com/emails"),
		EmailFrom:          getenvDefault("INQUIRY_EMAIL_FROM", "inquiries@krishnammagari.dev"),
		EmailTo:            splitList(os.Getenv("INQUIRY_EMAIL_TO")),
		FromName:           getenvDefault("INQUIRY_FROM_NAME", "Krishnammagari Developers"),
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}

	switch cfg.CatalogSource {
	case CatalogSourceStatic, CatalogSourceDynamoDB:
	default:
		return Config{}, fmt.Errorf("invalid CATALOG_SOURCE %q", cfg.CatalogSource)
	}
	switch cfg.InquiryStore {
	case InquiryStoreDynamoDB, InquiryStoreSQLite:
	default:
		return Config{}, fmt.Errorf("invalid INQUIRY_STORE %q", cfg.InquiryStore)
	}
	switch cfg.Notifier {
	case NotifierWeb3Forms, NotifierResend:
	default:
		return Config{}, fmt.Errorf("invalid NOTIFIER %q", cfg.Notifier)
	}

	overrides, ok := os.LookupEnv("STATUS_OVERRIDES")
	if ok {
		if cfg.StatusOverrides, err = entities.ParseStatusOverrides(overrides); err != nil {
			return Config{}, err
		}
	} else {
		cfg.StatusOverrides = entities.DefaultStatusOverrides
	}

	if cfg.Submission, err = loadSubmissionPolicy(); err != nil {
		return Config{}, err
	}
	if cfg.Selection, err = loadSelection(); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = getenvDuration("SESSION_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.CatalogCacheTTL, err = getenvDuration("CATALOG_CACHE_TTL", 30*time.Second); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadSubmissionPolicy() (usecase.SubmissionPolicy, error) {
	p := usecase.DefaultSubmissionPolicy()

	switch v := usecase.PersistencePolicy(strings.ToLower(getenvDefault("SUBMISSION_POLICY", string(p.Persistence)))); v {
	case usecase.PersistenceResilient, usecase.PersistenceStrict:
		p.Persistence = v
	default:
		return p, fmt.Errorf("invalid SUBMISSION_POLICY %q", v)
	}
	switch v := usecase.SuccessPolicy(strings.ToLower(getenvDefault("SUCCESS_POLICY", string(p.Success)))); v {
	case usecase.SuccessOnNotification, usecase.SuccessOnEither:
		p.Success = v
	default:
		return p, fmt.Errorf("invalid SUCCESS_POLICY %q", v)
	}

	var err error
	if p.MaxAttempts, err = getenvInt("NOTIFY_MAX_ATTEMPTS", p.MaxAttempts); err != nil {
		return p, err
	}
	if p.MaxAttempts < 1 {
		return p, fmt.Errorf("invalid NOTIFY_MAX_ATTEMPTS %d", p.MaxAttempts)
	}
	if p.RetryDelay, err = getenvDuration("NOTIFY_RETRY_DELAY", p.RetryDelay); err != nil {
		return p, err
	}
	if p.CloseAfter, err = getenvDuration("INQUIRY_CLOSE_DELAY", p.CloseAfter); err != nil {
		return p, err
	}
	return p, nil
}

func loadSelection() (selection.Controller, error) {
	c := selection.DefaultController()
	b, err := selection.ParseBehavior(os.Getenv("SELECTION_BEHAVIOR"))
	if err != nil {
		return c, err
	}
	c.Behavior = b
	if v, ok := os.LookupEnv("SELECTION_GUARD_SOLD"); ok && strings.TrimSpace(v) != "" {
		guard, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return c, fmt.Errorf("invalid SELECTION_GUARD_SOLD %q", v)
		}
		c.GuardSold = guard
	}
	return c, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return d, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
