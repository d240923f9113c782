package config

// Labels are the localized strings written into the artifact and the report.
type Labels struct {
	Title    string // prefix of the title banner line
	Section  string // word in "--- <Section> N ---"
	FullPage string // header of the body fallback
	Done     string
	Length   string // format with the character count
	Preview  string // format with the preview length
	Short    string // warning when little was extracted
}

var labels = map[string]Labels{
	"ko": {
		Title:    "제목: ",
		Section:  "섹션",
		FullPage: "전체 페이지 내용",
		Done:     "✅ 다운로드 완료!",
		Length:   "추출된 콘텐츠 길이: %d 문자",
		Preview:  "--- 미리보기 (처음 %d자) ---",
		Short:    "콘텐츠가 거의 없습니다. 로그인이 필요하거나 페이지 구조가 다를 수 있습니다.",
	},
	"en": {
		Title:    "Title: ",
		Section:  "Section",
		FullPage: "Full page content",
		Done:     "✅ Download complete!",
		Length:   "Extracted content length: %d characters",
		Preview:  "--- Preview (first %d characters) ---",
		Short:    "Very little content was extracted. Login may be required or the page layout may differ.",
	},
}

// Languages lists the supported label languages.
func Languages() []string {
	return []string{"ko", "en"}
}
