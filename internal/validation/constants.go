package validation

// Error messages
const (
	ErrMsgSchemaNotRegistered = "schema not registered"
	ErrMsgParseSchema         = "failed to parse schema JSON"
	ErrMsgAddSchemaResource   = "failed to add schema resource"
	ErrMsgCompileSchema       = "failed to compile schema"
	ErrMsgParseDocument       = "failed to parse JSON document"
	rootLocation              = "(root)"
)
