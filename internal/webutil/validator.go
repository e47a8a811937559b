// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"user_id":       "ユーザーID",
	"vocabulary_id": "語彙ID",
	"success":       "回答の正誤",
	"response_time": "回答時間",
	"confused_with": "混同した語彙ID",
	"query":         "検索クエリ",
	"text":          "テキスト",
	"texts":         "テキスト一覧",
	"vector_a":      "ベクトルA",
	"vector_b":      "ベクトルB",
	"cards":         "カード一覧",
	"card":          "カード",
	"limit":         "件数上限",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("uuid", "{0}はUUID形式で指定してください。")
}

// ValidateStruct は構造体をバリデーションし、失敗時は AppError を返します
func ValidateStruct(dst interface{}) error {
	if err := Validator.Struct(dst); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			return NewValidationErrorResponse(validationErrs)
		}
		return err
	}
	return nil
}
