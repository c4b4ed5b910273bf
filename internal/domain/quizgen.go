package domain

import "context"

// QuizGenerator defines the interface (port) for producing a validated
// QuizSet from the external text-generation capability.
//
// Generate sends exactly one request per invocation and performs no retries.
// count is the minimum number of valid questions the returned set must hold;
// a larger valid batch is returned as-is. On failure the error is a
// *DomainError carrying CodeLLMServiceError, CodeLLMParseError or
// CodeLLMSchemaError.
type QuizGenerator interface {
	Generate(ctx context.Context, category string, count int) (*QuizSet, error)
}
