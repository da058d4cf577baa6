package fetch

import (
	"context"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

// TableFetcher fetches the display table of one sector.
type TableFetcher interface {
	FetchTable(ctx context.Context, sector models.Sector) (models.TableResponse, error)
}

// Router sends each sector to the workbook source when it names a workbook
// and to the HTTP client otherwise.
type Router struct {
	HTTP     TableFetcher
	Workbook TableFetcher
}

// NewRouter returns a Router over client and the local workbook source.
func NewRouter(client *Client) *Router {
	return &Router{HTTP: client, Workbook: WorkbookSource{}}
}

func (r *Router) FetchTable(ctx context.Context, sector models.Sector) (models.TableResponse, error) {
	switch {
	case sector.Workbook != "" && r.Workbook != nil:
		return r.Workbook.FetchTable(ctx, sector)
	case sector.APIURL != "" && r.HTTP != nil:
		return r.HTTP.FetchTable(ctx, sector)
	default:
		return models.TableResponse{}, ErrNoSource
	}
}
