package http

import (
	"net/http"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/pkg/httpx"
	"github.com/northpath/realign/pkg/realignsdk"
	"github.com/northpath/realign/pkg/scoring"
)

// CatalogHandler serves the static tier table, question bank and the
// stateless scoring calculator.
type CatalogHandler struct{}

// HandleTiers lists the pricing tiers
//
//	@Summary		List tiers
//	@Description	Returns every pricing tier with its assessment, scenario and retention limits and the question areas it unlocks.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	realignsdk.TiersResponse	"Tiers, cheapest first"
//	@Router			/v1/tiers [get].
func (h *CatalogHandler) HandleTiers(w http.ResponseWriter, r *http.Request) {
	tiers := domain.Tiers()
	resp := realignsdk.TiersResponse{Tiers: make([]realignsdk.Tier, len(tiers))}
	for i, t := range tiers {
		resp.Tiers[i] = toTier(t)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleQuestions lists the survey questions
//
//	@Summary		List questions
//	@Description	Returns the question bank. With a tier, only the questions in areas unlocked by that tier are returned.
//	@Tags			Catalog
//	@Produce		json
//	@Param			tier	query		string							false	"Tier id"
//	@Success		200		{object}	realignsdk.QuestionsResponse	"Questions"
//	@Failure		400		{object}	realignsdk.ErrorResponse		"Unknown tier"
//	@Router			/v1/questions [get].
func (h *CatalogHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	tier := r.URL.Query().Get("tier")

	questions, err := service.QuestionsFor(tier)
	if err != nil {
		writeError(w, r, err, "list questions")
		return
	}

	resp := realignsdk.QuestionsResponse{
		Tier:      tier,
		Questions: make([]realignsdk.Question, len(questions)),
	}
	for i, q := range questions {
		resp.Questions[i] = toQuestion(q)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleScore computes metrics without storing anything
//
//	@Summary		Score answers
//	@Description	Computes redundancy, AI readiness and estimated savings for an answer set. Answers whose value is not a finite number are skipped by the percentage metrics and listed in skipped.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		realignsdk.ScoreRequest		true	"Answers and budget"
//	@Success		200		{object}	realignsdk.ScoreResponse	"Computed metrics"
//	@Failure		400		{object}	realignsdk.ErrorResponse	"Invalid request body or budget"
//	@Router			/v1/score [post].
func (h *CatalogHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req realignsdk.ScoreRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalid(w, "invalid request body")
		return
	}
	if err := scoring.ValidateBudget(req.Budget); err != nil {
		writeInvalid(w, err.Error())
		return
	}

	httpx.WriteJSON(w, http.StatusOK, realignsdk.ScoreResponse{
		Result: scoring.Compute(req.Answers, req.Budget),
	})
}
