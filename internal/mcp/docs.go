package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `stravafeed reads the authenticated athlete's most recent Strava activities.

Tools:
- list_activities: refreshes the access token and downloads one page of activities, newest first.
  Optional limit (1-200, default 10). Each activity is returned exactly as Strava sent it.
- fetch_history: lists earlier fetch attempts with their outcome and rate-limit usage.
  Only available when the server runs with a history database.

Every list_activities call consumes Strava API quota; check rate_limit in the result.
See stravafeed://docs/activity-fields for the fields most activities carry.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "stravafeed://docs/activity-fields",
		Name:        "activity-fields",
		Title:       "Activity fields",
		Description: "Common fields of a Strava summary activity and their units",
		Content: `# Activity fields

- name: activity title
- type: sport type such as Run, Ride or Swim
- distance: meters, as a decimal number
- moving_time, elapsed_time: seconds
- total_elevation_gain: meters
- start_date: UTC timestamp (RFC 3339)
- start_date_local: local wall-clock timestamp (RFC 3339, Z suffix)
- average_speed, max_speed: meters per second

## Rate limits

rate_limit.limit and rate_limit.usage echo the X-RateLimit-Limit and
X-RateLimit-Usage headers: two comma-separated numbers for the 15-minute
and daily windows.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
