package consts

const (
	MimePrefixImage = "image"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

// LoginURL 未登录访问受限路由时的跳转入口
const LoginURL = "/api/user/login"
