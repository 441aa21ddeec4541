package vanilla

// ChromeClass names a structural CSS class emitted around the fields.
type ChromeClass string

const (
	ClassForm       ChromeClass = "generic-form"
	ClassErrors     ChromeClass = "errors"
	ClassActions    ChromeClass = "form-actions"
	ClassItemList   ChromeClass = "array-item-list"
	ClassItem       ChromeClass = "array-item"
	ClassItemAdd    ChromeClass = "array-item-add"
	ClassItemRemove ChromeClass = "array-item-remove"
	ClassFieldError ChromeClass = "field-error"
)
