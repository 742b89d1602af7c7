package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
)

// custom validation tags
const (
	tagNotBlank            = "notblank"
	tagUsername            = "username"
	tagRollNo              = "rollno"
	tagPhone               = "phone"
	tagTeam                = "team"
	tagIsTrue              = "istrue"
	tagRequiredForLead     = "required_for_lead"
	tagInstitutionalEmail  = "institutional_email"
	tagUniqueInTeam        = "unique_in_team"
	validationErrorMessage = "validation failed"
)

var (
	registerOnce sync.Once
	translator   ut.Translator
)

// Register installs the custom rules and english messages on gin's binding
// validator. It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("validation: gin binding engine is not go-playground/validator")
		}
		_en := en.New()
		uni := ut.New(_en, _en)
		translator, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, translator)

		// Use JSON tag names for errors instead of Go struct names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation(tagUsername, func(fl validator.FieldLevel) bool {
			return IsUsername(fl.Field().String())
		})
		_ = v.RegisterValidation(tagRollNo, func(fl validator.FieldLevel) bool {
			return IsRollNumber(fl.Field().String())
		})
		_ = v.RegisterValidation(tagPhone, func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
		_ = v.RegisterValidation(tagTeam, func(fl validator.FieldLevel) bool {
			return entities.IsRecruitmentTeam(fl.Field().String())
		})
		_ = v.RegisterValidation(tagIsTrue, func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
		})

		v.RegisterStructValidation(recruitmentStructLevel, entities.CreateRecruitmentInput{})
		v.RegisterStructValidation(brainGamesStructLevel, entities.CreateBrainGamesInput{})
		v.RegisterStructValidation(newEventStructLevel, entities.CreateNewEventInput{})

		registerTranslation(v, tagNotBlank, "{0} must not be blank")
		registerTranslation(v, tagUsername, "{0} must be 3-30 characters of lowercase letters, digits, '_' or '.'")
		registerTranslation(v, tagRollNo, "{0} must look like bsxx00000")
		registerTranslation(v, tagPhone, "{0} must be a valid phone number")
		registerTranslation(v, tagTeam, "{0} must be one of the listed teams")
		registerTranslation(v, tagIsTrue, "{0} must be accepted")
		registerTranslation(v, tagRequiredForLead, "{0} is required when applying as lead")
		registerTranslation(v, tagInstitutionalEmail, "{0} must be an @{1} address")
		registerTranslation(v, tagUniqueInTeam, "{0} is repeated within the team")
		registerTranslation(v, "required", "{0} is required", true)
	})
}

// registerTranslation registers a message for tag; {1} expands to the tag param
func registerTranslation(v *validator.Validate, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = v.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// Struct validates obj with the same rules used for request binding
func Struct(obj any) error {
	Register()
	return binding.Validator.ValidateStruct(obj)
}

// ToAppError converts a binding or validation error into a 400 AppError with
// one message per offending field.
func ToAppError(err error) *domainerrors.AppError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domainerrors.BadRequest(fmt.Sprintf("invalid request body: %v", err))
	}
	Register()
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fieldPath(fe)] = fe.Translate(translator)
	}
	return domainerrors.Validation(validationErrorMessage, details)
}

// fieldPath drops the root struct name from the error namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func recruitmentStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(entities.CreateRecruitmentInput)
	if in.SelectedRole != entities.RoleLead {
		return
	}
	lead := []struct {
		value, json, field string
	}{
		{in.LeadershipExperience, "leadershipExperience", "LeadershipExperience"},
		{in.TeamVision, "teamVision", "TeamVision"},
		{in.ConflictResolution, "conflictResolution", "ConflictResolution"},
	}
	for _, f := range lead {
		if strings.TrimSpace(f.value) == "" {
			sl.ReportError(f.value, f.json, f.field, tagRequiredForLead, "")
		}
	}
}

func brainGamesStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(entities.CreateBrainGamesInput)
	if len(in.Members) == 0 {
		return
	}
	lead := in.Members[0]
	if lead.Email != "" && !IsInstitutionalEmail(lead.Email) {
		sl.ReportError(lead.Email, "members[0].email", "Members[0].Email", tagInstitutionalEmail, InstitutionDomain())
	}
	if lead.RollNumber != "" && !IsRollNumber(lead.RollNumber) {
		sl.ReportError(lead.RollNumber, "members[0].rollNumber", "Members[0].RollNumber", tagRollNo, "")
	}

	emails := make(map[string]bool, len(in.Members))
	rolls := make(map[string]bool, len(in.Members))
	for i, m := range in.Members {
		if e := NormalizeEmail(m.Email); e != "" {
			if emails[e] {
				sl.ReportError(m.Email, fmt.Sprintf("members[%d].email", i), fmt.Sprintf("Members[%d].Email", i), tagUniqueInTeam, "")
			}
			emails[e] = true
		}
		if r := NormalizeRollNumber(m.RollNumber); r != "" {
			if rolls[r] {
				sl.ReportError(m.RollNumber, fmt.Sprintf("members[%d].rollNumber", i), fmt.Sprintf("Members[%d].RollNumber", i), tagUniqueInTeam, "")
			}
			rolls[r] = true
		}
	}
}

func newEventStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(entities.CreateNewEventInput)
	seen := map[string]bool{NormalizeEmail(in.Leader.Email): true}
	for i, m := range in.Members {
		e := NormalizeEmail(m.Email)
		if e == "" {
			continue
		}
		if seen[e] {
			sl.ReportError(m.Email, fmt.Sprintf("members[%d].email", i), fmt.Sprintf("Members[%d].Email", i), tagUniqueInTeam, "")
		}
		seen[e] = true
	}
}
