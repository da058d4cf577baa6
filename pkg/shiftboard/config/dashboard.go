package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

// ErrConfigNotFound indicates the tenant document does not exist.
var ErrConfigNotFound = errors.New("config not found")

// Default intervals applied when a document leaves them at zero.
const (
	DefaultSwitchInterval  = 30 * time.Second
	DefaultRefreshInterval = 5 * time.Minute
)

// DefaultFetchTimeout bounds the download of a remote tenant document.
const DefaultFetchTimeout = 20 * time.Second

// Dashboard is one tenant's dashboard document.
type Dashboard struct {
	Title             string           `json:"title"`
	SwitchIntervalMs  int64            `json:"switchIntervalMs"`
	RefreshIntervalMs int64            `json:"refreshIntervalMs"`
	ScreensOrder      []string         `json:"screensOrder"`
	Columns           models.ColumnMap `json:"columns"`
	Sectors           []models.Sector  `json:"sectors"`
}

// ValidationError lists every problem found in a tenant document.
type ValidationError struct {
	ClientID string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Config do cliente %q inválida: %s", e.ClientID, strings.Join(e.Problems, ", "))
}

// ClientID normalizes a tenant identifier; blank means "default".
func ClientID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "default"
	}
	return id
}

// Location returns where the document of clientID lives under base, which is
// either a directory or an http(s) URL.
func Location(base, clientID string) string {
	clientID = ClientID(clientID)
	if isURL(base) {
		return strings.TrimRight(base, "/") + "/" + url.PathEscape(clientID) + "/dashboard.json"
	}
	return filepath.Join(base, clientID, "dashboard.json")
}

// Load reads, parses and validates the document of clientID under base.
// A remote document must arrive within timeout; zero uses DefaultFetchTimeout.
func Load(ctx context.Context, base, clientID string, timeout time.Duration) (*Dashboard, error) {
	clientID = ClientID(clientID)
	loc := Location(base, clientID)

	var data []byte
	var err error
	if isURL(loc) {
		data, err = fetchDocument(ctx, loc, timeout)
	} else {
		data, err = os.ReadFile(loc)
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("Config do cliente %q não encontrada. Esperado: %s: %w", clientID, loc, ErrConfigNotFound)
		}
	}
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("Falha ao buscar config do cliente %q: %w", clientID, err)
	}

	return Parse(clientID, data)
}

// Parse decodes and validates a tenant document.
func Parse(clientID string, data []byte) (*Dashboard, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{ClientID: ClientID(clientID), Problems: []string{"config inválida"}}
	}

	if problems := validate(raw); len(problems) > 0 {
		return nil, &ValidationError{ClientID: ClientID(clientID), Problems: problems}
	}

	var d Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &ValidationError{ClientID: ClientID(clientID), Problems: []string{err.Error()}}
	}

	if problems := d.validateSectors(); len(problems) > 0 {
		return nil, &ValidationError{ClientID: ClientID(clientID), Problems: problems}
	}
	return &d, nil
}

func validate(raw map[string]any) []string {
	var problems []string
	if title, ok := raw["title"].(string); !ok || title == "" {
		problems = append(problems, "`title` obrigatório")
	}
	if _, ok := raw["sectors"].([]any); !ok {
		problems = append(problems, "`sectors` deve ser um array")
	}
	if _, ok := raw["columns"].(map[string]any); !ok {
		problems = append(problems, "`columns` obrigatório")
	}
	if _, ok := raw["switchIntervalMs"].(float64); !ok {
		problems = append(problems, "`switchIntervalMs` deve ser number")
	}
	if _, ok := raw["refreshIntervalMs"].(float64); !ok {
		problems = append(problems, "`refreshIntervalMs` deve ser number")
	}
	return problems
}

func (d *Dashboard) validateSectors() []string {
	var problems []string
	seen := make(map[string]bool, len(d.Sectors))
	for i, s := range d.Sectors {
		switch {
		case s.ID == "":
			problems = append(problems, fmt.Sprintf("`sectors[%d].id` obrigatório", i))
		case seen[s.ID]:
			problems = append(problems, fmt.Sprintf("`sectors[%d].id` duplicado: %s", i, s.ID))
		}
		seen[s.ID] = true
		if s.APIURL == "" && s.Workbook == "" {
			problems = append(problems, fmt.Sprintf("`sectors[%d]` precisa de `apiUrl` ou `workbook`", i))
		}
	}
	return problems
}

// SwitchInterval returns the screen rotation interval.
func (d *Dashboard) SwitchInterval() time.Duration {
	if d.SwitchIntervalMs <= 0 {
		return DefaultSwitchInterval
	}
	return time.Duration(d.SwitchIntervalMs) * time.Millisecond
}

// RefreshInterval returns the data refresh interval.
func (d *Dashboard) RefreshInterval() time.Duration {
	if d.RefreshIntervalMs <= 0 {
		return DefaultRefreshInterval
	}
	return time.Duration(d.RefreshIntervalMs) * time.Millisecond
}

func fetchDocument(ctx context.Context, loc string, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		if ctx.Err() == nil && errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("Tempo limite excedido (%ds): %w", int(timeout.Seconds()), context.DeadlineExceeded)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("Config não encontrada (%d). Esperado: %s: %w", resp.StatusCode, loc, ErrConfigNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Erro HTTP: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
