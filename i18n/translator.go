package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "path" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "continuity":
			return "値が既存の内容の延長になっていません"
		case "out_of_order_key":
			return "フィールドが確定順序より前に到着しました"
		case "validation_error":
			return "検証エラー"
		case "schema_config":
			return "スキーマ設定が矛盾しています"
		case "trailing_input":
			return "終端後に余分な入力があります"
		}
	default: // "en"
		switch code {
		case "continuity":
			return "value is not an extension of the current content"
		case "out_of_order_key":
			return "field arrived behind the current declaration order"
		case "validation_error":
			return "validation error"
		case "schema_config":
			return "conflicting schema configuration"
		case "trailing_input":
			return "trailing input after completion"
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
