package settings

import "tubedeck/internal/logging"

// Controller collects categories for the next dialog. It is not safe for
// concurrent use.
type Controller struct {
	host       Host
	logger     *logging.AppLogger
	categories []Category
}

func NewController(host Host, logger *logging.AppLogger) *Controller {
	return &Controller{host: host, logger: logger}
}

// Clear drops every appended category, starting a fresh session.
func (c *Controller) Clear() {
	c.categories = nil
}

func (c *Controller) AppendCheckedCategory(title string, options []Option) {
	c.appendCategory(title, KindChecked, options)
}

func (c *Controller) AppendRadioCategory(title string, options []Option) {
	c.appendCategory(title, KindRadio, options)
}

func (c *Controller) appendCategory(title string, kind Kind, options []Option) {
	opts := make([]Option, len(options))
	copy(opts, options)
	c.categories = append(c.categories, Category{Title: title, Kind: kind, Options: opts})
	c.logger.Debug("Settings category appended", "title", title, "kind", kind, "options", len(opts))
}

// Categories returns what has been appended since the last Clear.
func (c *Controller) Categories() []Category {
	return cloneCategories(c.categories)
}

// ShowDialog freezes the appended categories into a Dialog and hands it to
// the host. onDismiss runs once, when the host dismisses the dialog.
func (c *Controller) ShowDialog(title string, onDismiss func()) *Dialog {
	d := &Dialog{
		Title:      title,
		categories: cloneCategories(c.categories),
		onDismiss:  onDismiss,
		logger:     c.logger,
	}
	c.logger.Info("Showing settings dialog", "title", title, "categories", len(d.categories))
	if c.host != nil {
		c.host.Present(d)
	}
	return d
}

func cloneCategories(in []Category) []Category {
	out := make([]Category, len(in))
	for i, cat := range in {
		out[i] = cat
		out[i].Options = make([]Option, len(cat.Options))
		copy(out[i].Options, cat.Options)
	}
	return out
}
