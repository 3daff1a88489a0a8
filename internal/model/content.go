package model

// SiteContent is all copy rendered on the marketing pages. It is loaded from YAML
// so the coach can edit text and prices without a rebuild.
type SiteContent struct {
	Brand           Brand              `yaml:"brand" json:"brand"`
	Nav             []Link             `yaml:"nav" json:"nav"`
	Hero            Hero               `yaml:"hero" json:"hero"`
	Services        []Service          `yaml:"services" json:"services"`
	Steps           []Step             `yaml:"steps" json:"steps"`
	Transformations []Transformation   `yaml:"transformations" json:"transformations"`
	Testimonials    TestimonialSection `yaml:"testimonials" json:"testimonials"`
	Programs        []Program          `yaml:"programs" json:"programs"`
	Extras          []Extra            `yaml:"extras" json:"extras"`
	FAQ             []FAQItem          `yaml:"faq" json:"faq"`
	Booking         BookingSection     `yaml:"booking" json:"booking"`
	Contact         ContactInfo        `yaml:"contact" json:"contact"`
	Footer          Footer             `yaml:"footer" json:"footer"`
	Pages           map[string]Meta    `yaml:"pages" json:"pages"`
}

type Brand struct {
	Name    string `yaml:"name" json:"name"`
	Tagline string `yaml:"tagline" json:"tagline"`
	SiteURL string `yaml:"site_url" json:"site_url"`
}

type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type Hero struct {
	Headline  string   `yaml:"headline" json:"headline"`
	Highlight string   `yaml:"highlight" json:"highlight"`
	Lead      string   `yaml:"lead" json:"lead"`
	Badges    []string `yaml:"badges" json:"badges"`
	Stats     []Stat   `yaml:"stats" json:"stats"`
	Image     string   `yaml:"image" json:"image"`
}

type Service struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Points      []string `yaml:"points" json:"points"`
}

type Step struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Metric is one before/after figure on a transformation card, e.g. -10 kg.
type Metric struct {
	Label string `yaml:"label" json:"label"`
	Value int    `yaml:"value" json:"value"`
	Unit  string `yaml:"unit" json:"unit"`
}

type Transformation struct {
	Name    string   `yaml:"name" json:"name"`
	Age     int      `yaml:"age" json:"age"`
	Program string   `yaml:"program" json:"program"`
	Quote   string   `yaml:"quote" json:"quote"`
	Metrics []Metric `yaml:"metrics" json:"metrics"`
}

type Testimonial struct {
	Name    string `yaml:"name" json:"name"`
	Age     int    `yaml:"age" json:"age"`
	Program string `yaml:"program" json:"program"`
	Rating  int    `yaml:"rating" json:"rating"`
	Text    string `yaml:"text" json:"text"`
	Results string `yaml:"results" json:"results"`
}

type TestimonialSection struct {
	Items []Testimonial `yaml:"items" json:"items"`
	Stats []Stat        `yaml:"stats" json:"stats"`
}

// Program is a pricing tier. AnnualPrice is the per-month price when billed yearly.
type Program struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Tagline      string   `yaml:"tagline" json:"tagline"`
	MonthlyPrice int      `yaml:"monthly_price" json:"monthly_price"`
	AnnualPrice  int      `yaml:"annual_price" json:"annual_price"`
	Popular      bool     `yaml:"popular" json:"popular"`
	Features     []string `yaml:"features" json:"features"`
	Benefits     []string `yaml:"benefits" json:"benefits"`
	IdealFor     string   `yaml:"ideal_for" json:"ideal_for"`
	Results      string   `yaml:"results" json:"results"`
}

// AnnualSavings is what a year costs less when billed annually instead of monthly.
func (p Program) AnnualSavings() int {
	return (p.MonthlyPrice - p.AnnualPrice) * 12
}

type Extra struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type FAQItem struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Option is one entry of a select input.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type QuickBookDate struct {
	Date      string `yaml:"date" json:"date"`
	Day       string `yaml:"day" json:"day"`
	Available bool   `yaml:"available" json:"available"`
}

// BookingSection is the copy around the consultation form.
type BookingSection struct {
	Heading      string          `yaml:"heading" json:"heading"`
	Intro        string          `yaml:"intro" json:"intro"`
	FormTitle    string          `yaml:"form_title" json:"form_title"`
	FormIntro    string          `yaml:"form_intro" json:"form_intro"`
	Goals        []Option        `yaml:"goals" json:"goals"`
	Timeframes   []Option        `yaml:"timeframes" json:"timeframes"`
	Dates        []QuickBookDate `yaml:"dates" json:"dates"`
	TimeSlots    []string        `yaml:"time_slots" json:"time_slots"`
	Consultation Step            `yaml:"consultation" json:"consultation"`
	ThanksTitle  string          `yaml:"thanks_title" json:"thanks_title"`
	ThanksBody   string          `yaml:"thanks_body" json:"thanks_body"`
	Trust        []string        `yaml:"trust" json:"trust"`
}

type ContactInfo struct {
	Phone   string   `yaml:"phone" json:"phone"`
	Email   string   `yaml:"email" json:"email"`
	Address []string `yaml:"address" json:"address"`
	Hours   []string `yaml:"hours" json:"hours"`
}

type LinkGroup struct {
	Title string `yaml:"title" json:"title"`
	Links []Link `yaml:"links" json:"links"`
}

type Footer struct {
	About  string      `yaml:"about" json:"about"`
	Groups []LinkGroup `yaml:"groups" json:"groups"`
}

// Meta is per-page head metadata, including the social card image.
type Meta struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image" json:"image"`
	ImageAlt    string `yaml:"image_alt" json:"image_alt"`
}
