package search

import (
	"context"
	"encoding/json"
	"fmt"
)

const searchSystemRole = "You are a search assistant."

// ChatClient is the slice of the AI client the search flow needs.
type ChatClient interface {
	ChatRaw(ctx context.Context, system, user string) (json.RawMessage, error)
}

type SearchUseCase struct {
	ai ChatClient
}

func NewSearchUseCase(ai ChatClient) *SearchUseCase {
	return &SearchUseCase{ai: ai}
}

// SearchScholarships forwards the query to the upstream API and returns the
// response body unmodified. No ranking or interpretation happens here.
func (uc *SearchUseCase) SearchScholarships(ctx context.Context, query string) (json.RawMessage, error) {
	prompt := fmt.Sprintf("Find scholarships for: %s", query)
	return uc.ai.ChatRaw(ctx, searchSystemRole, prompt)
}
