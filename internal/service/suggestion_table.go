package service

import "vocablayers/internal/domain"

// builtinSuggestions maps common English words to pre-authored Uzbek
// translations, listed in the order they are shown.
var builtinSuggestions = map[string][]domain.TranslationSuggestion{
	"hello": {
		{Translation: "salom", Meaning: "Umumiy salomlashish", Context: "Rasmiy va norasmiy", Confidence: 0.95},
		{Translation: "assalomu alaykum", Meaning: "Islomiy salomlashish", Context: "Rasmiy vaziyatlar", Confidence: 0.90},
		{Translation: "qalaysiz", Meaning: "Hal-ahvol so'rash", Context: "Do'stona muloqot", Confidence: 0.75},
	},
	"goodbye": {
		{Translation: "xayr", Meaning: "Oddiy xayrlashish", Context: "Har qanday vaziyat", Confidence: 0.95},
		{Translation: "ko'rishguncha", Meaning: "Keyingi uchrashuvgacha", Context: "Do'stlar orasida", Confidence: 0.85},
		{Translation: "sog' bo'ling", Meaning: "Yaxshi tilak bilan xayrlashish", Context: "Hurmat bilan", Confidence: 0.80},
	},
	"thank you": {
		{Translation: "rahmat", Meaning: "Oddiy minnatdorchilik", Context: "Kundalik muloqot", Confidence: 0.95},
		{Translation: "tashakkur", Meaning: "Rasmiy minnatdorchilik", Context: "Rasmiy vaziyatlar", Confidence: 0.90},
		{Translation: "katta rahmat", Meaning: "Kuchli minnatdorchilik", Context: "Juda minnatdor bo'lganda", Confidence: 0.85},
	},
	"water": {
		{Translation: "suv", Meaning: "Ichimlik, suyuqlik", Context: "Umumiy ma'no", Confidence: 0.95},
		{Translation: "daryo", Meaning: "Oqar suv", Context: "Katta suv havzasi", Confidence: 0.70},
		{Translation: "ichimlik", Meaning: "Ichish uchun suv", Context: "Maxsus holat", Confidence: 0.75},
	},
	"book": {
		{Translation: "kitob", Meaning: "O'qish uchun nashr", Context: "Umumiy ma'no", Confidence: 0.95},
		{Translation: "asar", Meaning: "Adabiy yoki ilmiy ish", Context: "Rasmiy kontekst", Confidence: 0.80},
		{Translation: "daftar", Meaning: "Yozish uchun kitob", Context: "Maktab buyumi", Confidence: 0.70},
	},
	"friend": {
		{Translation: "do'st", Meaning: "Yaqin inson", Context: "Umumiy ma'no", Confidence: 0.95},
		{Translation: "o'rtoq", Meaning: "Hamroh, sheriq", Context: "Rasmiy yoki ish muhiti", Confidence: 0.85},
		{Translation: "yor", Meaning: "Juda yaqin do'st", Context: "She'riy, adabiy", Confidence: 0.75},
	},
	"house": {
		{Translation: "uy", Meaning: "Yashash joyi", Context: "Umumiy ma'no", Confidence: 0.95},
		{Translation: "xonadon", Meaning: "Oila uyi", Context: "Rasmiy til", Confidence: 0.85},
		{Translation: "turar joy", Meaning: "Yashash uchun bino", Context: "Rasmiy hujjatlar", Confidence: 0.80},
	},
	"love": {
		{Translation: "sevgi", Meaning: "Mehr-muhabbat hissi", Context: "Umumiy ma'no", Confidence: 0.95},
		{Translation: "muhabbat", Meaning: "Chuqur sevgi", Context: "Adabiy, she'riy", Confidence: 0.90},
		{Translation: "ishq", Meaning: "Kuchli sevgi hissi", Context: "Romantik kontekst", Confidence: 0.85},
	},
	"work": {
		{Translation: "ish", Meaning: "Mehnat faoliyati", Context: "Umumiy ma'no", Confidence: 0.95},
		{Translation: "mehnat", Meaning: "Jismoniy yoki aqliy ish", Context: "Rasmiy til", Confidence: 0.85},
		{Translation: "xizmat", Meaning: "Xizmat ko'rsatish", Context: "Professional muhit", Confidence: 0.80},
	},
	"happy": {
		{Translation: "baxtli", Meaning: "Baxt hissi", Context: "Umumiy holat", Confidence: 0.95},
		{Translation: "xursand", Meaning: "Quvonchli kayfiyat", Context: "Vaqtinchalik holat", Confidence: 0.90},
		{Translation: "shod", Meaning: "Juda xursand", Context: "Kuchli his", Confidence: 0.85},
	},
}

// phoneticRules rewrite English letter clusters into Uzbek spelling.
// Pairs are applied one after another, in order.
var phoneticRules = [][2]string{
	{"ph", "f"},
	{"th", "t"},
	{"ch", "ch"},
	{"sh", "sh"},
	{"tion", "siya"},
	{"sion", "siya"},
	{"ture", "tur"},
	{"ity", "lik"},
}
