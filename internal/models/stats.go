package models

type Stats struct {
	ContactForms        int `json:"contactForms"`
	Newsletter          int `json:"newsletter"`
	ThisMonth           int `json:"thisMonth"`
	Growth              int `json:"growth"`
	NewsletterThisMonth int `json:"newsletterThisMonth"`
	NewsletterGrowth    int `json:"newsletterGrowth"`
}
