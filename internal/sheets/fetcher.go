package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ernestocullari/audience-pathways/internal/common"
	"github.com/ernestocullari/audience-pathways/internal/model"
	"github.com/ernestocullari/audience-pathways/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Fetcher implements the DatasetFetcher interface for Google Sheets.
type Fetcher struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewFetcher creates a new Google Sheets dataset fetcher.
func NewFetcher(ctx context.Context, config Config, logger *slog.Logger) (*Fetcher, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Fetcher{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// Fetch reads the named sheet tab and returns it as a dataset. The first row
// becomes the header row; each call reads the sheet fresh.
func (f *Fetcher) Fetch(ctx context.Context, sheetName string) (*model.Dataset, error) {
	if sheetName == "" {
		sheetName = f.config.SheetName
	}
	readRange := fmt.Sprintf("%s!%s", sheetName, f.config.ReadRange)

	retryOpts := service.RetryOptions{
		MaxAttempts:  f.config.RetryAttempts,
		InitialDelay: f.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	var resp *sheets.ValueRange
	err := common.WithRetry(ctx, func() error {
		var getErr error
		resp, getErr = f.service.Spreadsheets.Values.Get(f.config.SpreadsheetID, readRange).Context(ctx).Do()
		return getErr
	}, retryOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrUpstreamFetch, readRange, err)
	}

	dataset := datasetFromValues(resp.Values)

	f.logger.Debug("fetched taxonomy sheet",
		"sheet", sheetName,
		"columns", len(dataset.Headers),
		"rows", len(dataset.Rows))

	return dataset, nil
}

// datasetFromValues converts the Sheets API value grid into a dataset. Cells
// come back as any; everything is rendered to its string form.
func datasetFromValues(values [][]any) *model.Dataset {
	if len(values) == 0 {
		return &model.Dataset{}
	}

	headers := stringRow(values[0])
	rows := make([][]string, 0, len(values)-1)
	for _, row := range values[1:] {
		rows = append(rows, stringRow(row))
	}

	return &model.Dataset{Headers: headers, Rows: rows}
}

func stringRow(row []any) []string {
	cells := make([]string, len(row))
	for i, cell := range row {
		if s, ok := cell.(string); ok {
			cells[i] = s
			continue
		}
		cells[i] = fmt.Sprint(cell)
	}
	return cells
}

// createSheetsService creates a Google Sheets API service with read-only
// scope.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsReadonlyScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}
