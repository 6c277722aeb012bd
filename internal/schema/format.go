package schema

// FieldMessages flattens a validation error into the field → message
// map returned to callers: the first message wins when a field has
// more than one issue, and valid fields are absent.
func FieldMessages(err *Error) map[string]string {
	messages := make(map[string]string)
	if err == nil {
		return messages
	}
	for _, issue := range err.Issues {
		if _, ok := messages[issue.Field]; !ok {
			messages[issue.Field] = issue.Message
		}
	}
	return messages
}
