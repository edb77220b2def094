package service

import "github.com/northpath/realign/internal/realign/domain"

// QuestionsFor returns the question bank unlocked by tier. An empty tier
// returns every question.
func QuestionsFor(tier string) ([]domain.Question, error) {
	if tier == "" {
		return domain.Questions(), nil
	}
	t, err := domain.ParseTier(tier)
	if err != nil {
		return nil, invalid(err)
	}
	return domain.QuestionsForTier(t), nil
}
