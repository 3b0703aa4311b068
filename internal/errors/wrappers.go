package errors

import "fmt"

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName).
		WithContext("stage", operation)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// WrapProcessError wraps failures of external commands such as make
func WrapProcessError(command, dir string, cause error) *BaseError {
	message := fmt.Sprintf("command '%s' failed in %s", command, dir)
	return Wrap(ProcessErrorCode, message, cause).
		WithContext("command", command).
		WithContext("dir", dir)
}

// NotFound reports that a named item could not be located
func NotFound(kind, name string) *BaseError {
	return Newf(NotFoundErrorCode, "%s '%s' not found", kind, name).
		WithContext("kind", kind).
		WithContext("name", name)
}

// Validation creates a validation error for a single field
func Validation(field, message string) *BaseError {
	return Newf(ValidationErrorCode, "invalid %s: %s", field, message).
		WithContext("field", field)
}

// Interrupted reports that the user aborted an interactive prompt
func Interrupted() *BaseError {
	return New(InterruptedErrorCode, "interrupted")
}
