// Package i18n renders the user-facing texts of the menu in the operator's
// language. English is the fallback; the Spanish texts are the original
// wording of the application.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies one user-facing message.
type Key string

const (
	GreetingAnonymous Key = "greeting.anonymous"
	GreetingUser      Key = "greeting.user"
	MenuRegister      Key = "menu.register"
	MenuLogin         Key = "menu.login"
	MenuExit          Key = "menu.exit"
	ErrorPrefix       Key = "error.prefix"
	Farewell          Key = "farewell"

	PromptName            Key = "prompt.name"
	PromptDNI             Key = "prompt.dni"
	PromptNewPassword     Key = "prompt.password.new"
	PromptCurrentPassword Key = "prompt.password.current"

	ErrInvalidCommand     Key = "error.invalid_command"
	ErrUserExists         Key = "error.user_exists"
	ErrInvalidCredentials Key = "error.invalid_credentials"
	ErrWriteDB            Key = "error.write_db"
	ErrUnexpected         Key = "error.unexpected"
)

var supported = []language.Tag{language.English, language.Spanish}

var texts = map[language.Tag]map[Key]string{
	language.English: {
		GreetingAnonymous:     "Hello! What do you want to do?",
		GreetingUser:          "Hello, %s. What do you want to do?",
		MenuRegister:          "1) Register",
		MenuLogin:             "2) Login",
		MenuExit:              "3) Exit",
		ErrorPrefix:           "An error occurred. Reason: %s",
		Farewell:              "See you later!",
		PromptName:            "Enter a user name",
		PromptDNI:             "What is your DNI?",
		PromptNewPassword:     "Enter a password",
		PromptCurrentPassword: "Enter your password",
		ErrInvalidCommand:     "Enter a valid command.",
		ErrUserExists:         "The user already exists",
		ErrInvalidCredentials: "The user or password is incorrect",
		ErrWriteDB:            "There were errors writing the database",
		ErrUnexpected:         "Unexpected error, please try again",
	},
	language.Spanish: {
		GreetingAnonymous:     "¡Hola! ¿Qué quieres hacer?",
		GreetingUser:          "Hola, %s. ¿Qué quieres hacer?",
		MenuRegister:          "1) Registrarse",
		MenuLogin:             "2) Login",
		MenuExit:              "3) Salir",
		ErrorPrefix:           "Se ha producido un error. Motivo: %s",
		Farewell:              "¡Hasta luego!",
		PromptName:            "Escriba un usuario",
		PromptDNI:             "¿Cuál es tu DNI?",
		PromptNewPassword:     "Escriba una contraseña",
		PromptCurrentPassword: "Escriba su contraseña",
		ErrInvalidCommand:     "Introduce un comando válido.",
		ErrUserExists:         "El usuario ya existe",
		ErrInvalidCredentials: "El usuario o la contraseña son incorrectos",
		ErrWriteDB:            "Ha habido errores escribiendo la base de datos",
		ErrUnexpected:         "Error inesperado, inténtalo de nuevo",
	},
}

var (
	cat     = buildCatalog()
	matcher = language.NewMatcher(supported)
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range texts {
		for k, v := range msgs {
			if err := b.SetString(tag, string(k), v); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Translator renders messages for one language.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

// New picks the supported language closest to lang. Malformed or
// unsupported tags fall back to English.
func New(lang string) *Translator {
	tag := language.English
	if requested, err := language.Parse(lang); err == nil {
		_, idx, conf := matcher.Match(requested)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Translator{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Language returns the selected tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T renders key with args.
func (t *Translator) T(key Key, args ...any) string {
	return t.p.Sprintf(string(key), args...)
}
