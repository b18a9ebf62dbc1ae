package dto

// UpdatePlaceReq はPATCH /places/:idエンドポイントのリクエストボディを表します。
// 更新できるのはtitleとdescriptionのみです。
type UpdatePlaceReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}
