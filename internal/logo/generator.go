package logo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logging"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/metrics"
)

const defaultConcurrency = 4

var (
	// ErrMascotRequired rejects a request without a mascot to draw.
	ErrMascotRequired = errors.New("mascot is required")
	// ErrNotImage is returned by verification when the generator answers with something other than an image.
	ErrNotImage = errors.New("generator did not return an image")
)

// Spec is everything the generator needs for one logo. A nil Seed draws a random one.
type Spec struct {
	TeamID    string  `json:"id,omitempty"`
	Mascot    string  `json:"mascot"`
	Primary   string  `json:"primary"`
	Secondary string  `json:"secondary"`
	Seed      *uint32 `json:"seed,omitempty"`
}

// SpecFromTeam uses the team's own seed.
func SpecFromTeam(t teams.Team) Spec {
	seed := t.Seed
	return Spec{TeamID: t.ID, Mascot: t.Mascot, Primary: t.Primary, Secondary: t.Secondary, Seed: &seed}
}

// Result is one entry of a batch. Error is empty on success.
type Result struct {
	TeamID string `json:"teamId"`
	URL    string `json:"url,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Config controls URL shape, verification and batch fan-out.
type Config struct {
	BaseURL     string
	Width       int
	Height      int
	Verify      bool
	Concurrency int
	// BatchTimeout bounds a whole GenerateBatch call; zero means no bound.
	BatchTimeout time.Duration
	HTTPClient   *http.Client
	Logger       *slog.Logger
	Recorder     *metrics.Recorder
}

// Generator builds logo URLs and, when configured, confirms the host renders them.
type Generator struct {
	urls         URLBuilder
	verify       bool
	concurrency  int
	batchTimeout time.Duration
	httpClient   *http.Client
	logger       *slog.Logger
	recorder     *metrics.Recorder
	randSeed     func() uint32
	now          func() time.Time
}

// NewGenerator constructs a Generator.
func NewGenerator(cfg Config) *Generator {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Generator{
		urls:         URLBuilder{BaseURL: cfg.BaseURL, Width: cfg.Width, Height: cfg.Height},
		verify:       cfg.Verify,
		concurrency:  concurrency,
		batchTimeout: cfg.BatchTimeout,
		httpClient:   client,
		logger:       cfg.Logger,
		recorder:     cfg.Recorder,
		randSeed:     RandomSeed,
		now:          time.Now,
	}
}

// RandomSeed draws a team image seed in [0, 1e9).
func RandomSeed() uint32 {
	return rand.N(uint32(1_000_000_000))
}

// URL returns the logo URL for spec without contacting the generator.
func (g *Generator) URL(spec Spec) (string, error) {
	if strings.TrimSpace(spec.Mascot) == "" {
		return "", ErrMascotRequired
	}
	seed := g.randSeed()
	if spec.Seed != nil {
		seed = *spec.Seed
	}
	prompt := BuildPrompt(spec.Mascot, spec.Primary, spec.Secondary)
	return g.urls.Build(prompt, JitterSeed(seed)), nil
}

// Generate returns the logo URL for spec, verifying it first when configured.
func (g *Generator) Generate(ctx context.Context, spec Spec) (string, error) {
	start := g.now()
	u, err := g.URL(spec)
	if err == nil && g.verify {
		err = g.check(ctx, u)
	}
	g.recorder.RecordLogoGeneration(g.now().Sub(start), err)
	if err != nil {
		return "", err
	}
	return u, nil
}

// GenerateBatch generates every spec with bounded concurrency. One team's
// failure is reported in its Result and never stops the others. Results keep
// the order of specs. Teams still pending at the batch deadline report the
// context error.
func (g *Generator) GenerateBatch(ctx context.Context, specs []Spec) []Result {
	results := make([]Result, len(specs))
	logger := logging.FromContext(ctx, g.logger)
	if g.batchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.batchTimeout)
		defer cancel()
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i, spec := range specs {
		eg.Go(func() error {
			results[i] = Result{TeamID: spec.TeamID}
			u, err := g.Generate(egctx, spec)
			if err != nil {
				results[i].Error = err.Error()
				logging.Warn(logger, "logo generation failed",
					slog.String(logging.FieldTeamID, spec.TeamID),
					slog.Any(logging.FieldError, err),
				)
				return nil
			}
			results[i].URL = u
			return nil
		})
	}
	_ = eg.Wait()
	return results
}

func (g *Generator) check(ctx context.Context, u string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("logo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logo request: unexpected status %d", resp.StatusCode)
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return ErrNotImage
	}
	return nil
}
