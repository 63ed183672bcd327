package identity

// Role 系统角色
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor 请求发起者（由外部身份系统签发，本服务只做校验与透传）。
// ID 为 0 表示匿名访问。
type Actor struct {
	ID     int64
	Roles  []Role
	Banned bool
}

// Anonymous 匿名访问者
var Anonymous = Actor{}

// HasRole 统一的权限判定入口，禁止散落的角色字符串比较
func (a Actor) HasRole(r Role) bool {
	for _, have := range a.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// IsAnonymous 是否未登录
func (a Actor) IsAnonymous() bool { return a.ID == 0 }
