package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "status" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "duplicate_component":
			return "コンポーネントが重複しています"
		case "parameter_shape":
			return "パラメータには schema か content のどちらか一方が必要です"
		case "unknown_path_param_type":
			return "パステンプレートの型を解決できません"
		case "duplicate_request_body":
			return "リクエストボディが重複しています"
		case "get_request_body":
			return "GET 操作はリクエストボディを持てません"
		case "missing_response":
			return "レスポンスが定義されていません"
		case "invalid_status_code":
			return "ステータスコードが不正です"
		case "server_variable_mismatch":
			return "サーバ変数が URL のプレースホルダと一致しません"
		case "document_assembly":
			return "ドキュメントを構築できません"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "duplicate_component":
			return "component already registered with different content"
		case "parameter_shape":
			return "parameter needs exactly one of schema or content"
		case "unknown_path_param_type":
			return "unresolvable type in path template"
		case "duplicate_request_body":
			return "request body already declared"
		case "get_request_body":
			return "GET operation cannot have a request body"
		case "missing_response":
			return "operation declares no responses"
		case "invalid_status_code":
			return "invalid status code"
		case "server_variable_mismatch":
			return "server variables do not match URL placeholders"
		case "document_assembly":
			return "cannot assemble document"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
