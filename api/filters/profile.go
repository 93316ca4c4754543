package filters

// Query parameters for the stats filtering.
type MatchFilterParams struct {
	Queue    string `form:"queue"`
	Champion string `form:"champion"`
}
