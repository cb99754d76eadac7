package httpt

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type LabelResponse struct {
	LabelURL string `json:"labelUrl"`
}

// fieldView is one input of the rendered form.
type fieldView struct {
	Name        string
	Label       string
	Placeholder string
	Value       string
	Error       string
	Numeric     bool
}

type pageView struct {
	Fields       []fieldView
	Notification *notificationView
	LabelURL     string
}

type notificationView struct {
	Title       string
	Description string
	Failed      bool
}
