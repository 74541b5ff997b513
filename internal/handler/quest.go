package handler

import (
	"net/http"

	"github.com/osse101/scrapworld/internal/quest"
)

// CompleteQuestRequest completes a quest for a user
type CompleteQuestRequest struct {
	QuestID string `json:"quest_id" validate:"required,notblank"`
	UserID  string `json:"user_id" validate:"required,notblank"`
}

type QuestHandler struct {
	questService quest.Service
}

func NewQuestHandler(questService quest.Service) *QuestHandler {
	return &QuestHandler{questService: questService}
}

// ListQuests returns the quest catalog
// @Summary List quests
// @Tags quest
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.Quest}
// @Failure 500 {object} APIResponse
// @Router /quests [get]
func (h *QuestHandler) ListQuests(w http.ResponseWriter, r *http.Request) {
	quests, err := h.questService.ListQuests(r.Context())
	if err != nil {
		respondServiceError(w, r, "List quests", err)
		return
	}
	respondData(w, http.StatusOK, quests)
}

// GetUserQuests returns the user's quest board
// @Summary Get user quests
// @Description Splits the quest catalog into completed and available quests
// @Tags quest
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} APIResponse{data=quest.Board}
// @Failure 404 {object} APIResponse
// @Router /quests/{userID} [get]
func (h *QuestHandler) GetUserQuests(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}

	board, err := h.questService.GetUserQuests(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get user quests", err)
		return
	}
	respondData(w, http.StatusOK, board)
}

// CompleteQuest completes a quest and grants its reward
// @Summary Complete quest
// @Tags quest
// @Accept json
// @Produce json
// @Param request body CompleteQuestRequest true "Quest completion"
// @Success 200 {object} APIResponse{data=quest.CompletionResult}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /quests/complete [post]
func (h *QuestHandler) CompleteQuest(w http.ResponseWriter, r *http.Request) {
	var req CompleteQuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete quest"); err != nil {
		return
	}

	res, err := h.questService.CompleteQuest(r.Context(), req.UserID, req.QuestID)
	if err != nil {
		respondServiceError(w, r, "Complete quest", err)
		return
	}
	respondData(w, http.StatusOK, res)
}
