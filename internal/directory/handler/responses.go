package handler

import (
	"quorum/internal/directory/models"
)

// MemberListResponse carries one page of members plus the pre-pagination total.
type MemberListResponse struct {
	Members []*models.Member `json:"members"`
	Total   int              `json:"total"`
}

func toMemberListResponse(members []*models.Member, total int) *MemberListResponse {
	if members == nil {
		members = []*models.Member{}
	}
	return &MemberListResponse{Members: members, Total: total}
}
