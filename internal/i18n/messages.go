package i18n

import "strings"

// The marketplace serves English and Arabic; every user-facing action
// message exists in both. Keys missing a translation fall back to
// English, then to the key itself so a typo is visible instead of blank.

const (
	LangEN = "en"
	LangAR = "ar"
)

var catalog = map[string]map[string]string{
	LangEN: {
		"listing.created":    "listing created",
		"listing.updated":    "listing updated",
		"listing.deleted":    "listing deleted",
		"listing.reordered":  "listings reordered",
		"listing.flags_set":  "listing placement updated",
		"category.created":   "category created",
		"category.updated":   "category updated",
		"category.deleted":   "category deleted",
		"category.reordered": "categories reordered",
		"area.created":       "area created",
		"area.updated":       "area updated",
		"area.deleted":       "area deleted",
		"area.reordered":     "areas reordered",
		"area.active_set":    "area visibility updated",
		"media.uploaded":     "image uploaded",
		"media.deleted":      "image deleted",

		"error.validation":    "some fields are invalid",
		"error.unauthorized":  "admin access required",
		"error.not_found":     "record not found",
		"error.conflict":      "name already exists",
		"error.referential":   "record is still referenced by listings; reassign or delete them first",
		"error.partial_batch": "some rows failed to update; please reorder again",
		"error.internal":      "something went wrong, please try again",
	},
	LangAR: {
		"listing.created":    "تم إنشاء العقار",
		"listing.updated":    "تم تحديث العقار",
		"listing.deleted":    "تم حذف العقار",
		"listing.reordered":  "تمت إعادة ترتيب العقارات",
		"listing.flags_set":  "تم تحديث موضع العقار",
		"category.created":   "تم إنشاء التصنيف",
		"category.updated":   "تم تحديث التصنيف",
		"category.deleted":   "تم حذف التصنيف",
		"category.reordered": "تمت إعادة ترتيب التصنيفات",
		"area.created":       "تمت إضافة المنطقة",
		"area.updated":       "تم تحديث المنطقة",
		"area.deleted":       "تم حذف المنطقة",
		"area.reordered":     "تمت إعادة ترتيب المناطق",
		"area.active_set":    "تم تحديث ظهور المنطقة",
		"media.uploaded":     "تم رفع الصورة",
		"media.deleted":      "تم حذف الصورة",

		"error.validation":    "بعض الحقول غير صالحة",
		"error.unauthorized":  "صلاحيات المشرف مطلوبة",
		"error.not_found":     "السجل غير موجود",
		"error.conflict":      "الاسم موجود مسبقًا",
		"error.referential":   "السجل لا يزال مرتبطًا بعقارات؛ انقلها أو احذفها أولًا",
		"error.partial_batch": "فشل تحديث بعض الصفوف؛ يرجى إعادة الترتيب مرة أخرى",
		"error.internal":      "حدث خطأ ما، يرجى المحاولة مرة أخرى",
	},
}

// T resolves a message key for the given language.
func T(lang, key string) string {
	if msgs, ok := catalog[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[LangEN][key]; ok {
		return msg
	}
	return key
}

// Pick chooses the response language from an explicit ?lang value and
// the Accept-Language header, defaulting to English.
func Pick(queryLang, acceptLanguage string) string {
	if normalized := normalize(queryLang); normalized != "" {
		return normalized
	}
	for _, part := range strings.Split(acceptLanguage, ",") {
		if normalized := normalize(strings.SplitN(part, ";", 2)[0]); normalized != "" {
			return normalized
		}
	}
	return LangEN
}

func normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	switch {
	case tag == LangEN || strings.HasPrefix(tag, "en-"):
		return LangEN
	case tag == LangAR || strings.HasPrefix(tag, "ar-"):
		return LangAR
	}
	return ""
}
