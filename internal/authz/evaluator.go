package authz

import "artspace/internal/domain/model"

// 認証済みの操作主体。IDとロール集合を持つ。
type Principal struct {
	ID       string
	Username string
	Roles    []string
}

func (p Principal) HasRole(role model.Role) bool {
	for _, r := range p.Roles {
		if r == string(role) {
			return true
		}
	}
	return false
}

func (p Principal) IsAdmin() bool {
	return p.HasRole(model.RoleAdmin)
}

// 注文の閲覧・操作可否。本人（所有者）か管理者ならtrue。
// 副作用なし。該当しなければfalseを返すだけでエラーにはしない。
func CanAccessOrder(p Principal, o model.Order) bool {
	if p.IsAdmin() {
		return true
	}
	return p.ID != "" && p.ID == o.UserID
}
