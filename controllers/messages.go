package controllers

// User-facing messages, kept verbatim from the service's client contract.
const (
	MsgBadRequest    = "데이터 형식이 올바르지 않습니다."
	MsgPriceTooLow   = "메뉴 가격은 0보다 작을 수 없습니다."
	MsgNoCategory    = "존재하지 않는 카테고리입니다."
	MsgNoMenu        = "존재하지 않는 메뉴입니다."
	MsgCategoryAdded = "카테고리를 등록하였습니다."
	MsgCategorySaved = "카테고리 정보를 수정하였습니다."
	MsgCategoryGone  = "카테고리 정보를 삭제하였습니다."
	MsgMenuAdded     = "메뉴를 등록하였습니다."
	MsgMenuSaved     = "메뉴를 수정하였습니다."
	MsgMenuGone      = "메뉴를 삭제하였습니다."
)
