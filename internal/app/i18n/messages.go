// Package i18n holds the user-facing strings of the navbar and guards.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	keyBrand           = "Love Bell"
	keyWelcome         = "Welcome, %s"
	keyAdminConsole    = "Admin console"
	keyProfile         = "Profile"
	keyLogout          = "Log out"
	keyLogin           = "Log in"
	keyRegister        = "Register"
	keyAccountDisabled = "Your account has been disabled, please contact the administrator"
	keyAdminRequired   = "You do not have administrator permission"
)

var supported = []language.Tag{language.English, language.Chinese}

var matcher = language.NewMatcher(supported)

func init() {
	zh := map[string]string{
		keyBrand:           "恋爱铃",
		keyWelcome:         "欢迎，%s",
		keyAdminConsole:    "管理控制台",
		keyProfile:         "个人信息",
		keyLogout:          "退出登录",
		keyLogin:           "登录",
		keyRegister:        "注册",
		keyAccountDisabled: "您的账户已被禁用，请联系管理员",
		keyAdminRequired:   "您没有管理员权限",
	}
	for key, msg := range zh {
		if err := message.SetString(language.Chinese, key, msg); err != nil {
			panic(err)
		}
		if err := message.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
}

// Translator renders messages in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

func New(tag language.Tag) *Translator {
	return &Translator{tag: tag, printer: message.NewPrinter(tag)}
}

// Match picks the supported language for an Accept-Language header value,
// falling back to def.
func Match(acceptLanguage string, def language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return supported[idx]
}

// ParseDefault parses a configured language, accepting only supported ones.
func ParseDefault(s string) (language.Tag, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

func (t *Translator) Lang() string { return t.tag.String() }

func (t *Translator) Brand() string        { return t.printer.Sprintf(keyBrand) }
func (t *Translator) AdminConsole() string { return t.printer.Sprintf(keyAdminConsole) }
func (t *Translator) Profile() string      { return t.printer.Sprintf(keyProfile) }
func (t *Translator) Logout() string       { return t.printer.Sprintf(keyLogout) }
func (t *Translator) Login() string        { return t.printer.Sprintf(keyLogin) }
func (t *Translator) Register() string     { return t.printer.Sprintf(keyRegister) }

func (t *Translator) Welcome(username string) string {
	return t.printer.Sprintf(keyWelcome, username)
}

func (t *Translator) AccountDisabled() string { return t.printer.Sprintf(keyAccountDisabled) }
func (t *Translator) AdminRequired() string   { return t.printer.Sprintf(keyAdminRequired) }
