// Package validator builds declarative validation from small Rule values.
//
// A Rule couples a Check func with the ValidationError reported when the
// check fails. Apply evaluates a list of rules and aggregates failures into
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//		validator.RequiredString("email", req.Email),
//		validator.Matches("email", req.Email, emailRe, "email address", "validation.email"),
//		validator.MaxLenString("message", req.Message, 2000),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// verrs.Has("email"), verrs.HasKey(validator.KeyRequired), ...
//	}
//
// Every rule carries a TranslationKey so the caller decides which copy the
// visitor sees.
package validator
