package callgrid

// Context levels accepted by the extensive-calls endpoint. Extended is the
// richest level and the only one that includes CRM linkage fields.
const (
	ContextBasic    = "Basic"
	ContextExtended = "Extended"
)

// Filter scopes a calls query. Zero-valued fields are omitted from the wire.
// Cursor is an opaque continuation token from a previous page and is passed
// back verbatim; no meaning is attached to its contents.
type Filter struct {
	CallIDs        []string `json:"callIds,omitempty"`
	FromDateTime   string   `json:"fromDateTime,omitempty"`
	ToDateTime     string   `json:"toDateTime,omitempty"`
	PrimaryUserIDs []string `json:"primaryUserIds,omitempty"`
	Cursor         string   `json:"cursor,omitempty"`
}

// ContentSelector tells the API how much nested detail to return.
type ContentSelector struct {
	Context string `json:"context"`
}

// ListCallsQuery selects calls for the list endpoint.
type ListCallsQuery struct {
	FromDateTime string
	ToDateTime   string
	Cursor       string
}

// CallDetailsQuery selects calls for the extensive endpoint. At least one of
// CallIDs, FromDateTime, ToDateTime, or PrimaryUserIDs must be set; a cursor
// alone does not scope a query. Context defaults to Extended when empty.
type CallDetailsQuery struct {
	CallIDs        []string
	FromDateTime   string
	ToDateTime     string
	PrimaryUserIDs []string
	Context        string
	Cursor         string
}

type transcriptRequest struct {
	Filter Filter `json:"filter"`
}

type extensiveRequest struct {
	Filter          Filter          `json:"filter"`
	ContentSelector ContentSelector `json:"contentSelector"`
}
