package messages

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	OperationInProgress = "a profile refresh is already in progress, please wait"
	PlayerNotFoundMsg   = "player %q#%q not found, check the Riot ID and try again"
	RequestFailedMsg    = "API request failed on URL %s"
)
