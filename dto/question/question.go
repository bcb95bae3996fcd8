package question

type QuestionCreateDTO struct {
	Title            string `json:"title"`
	ProblemStatement string `json:"problemStatement"`
	Solution         string `json:"solution"`
	Topic            string `json:"topic"`
}

// QuestionUpdateDTO carries a partial update; nil fields are left untouched.
type QuestionUpdateDTO struct {
	Title            *string `json:"title"`
	ProblemStatement *string `json:"problemStatement"`
	Solution         *string `json:"solution"`
	Topic            *string `json:"topic"`
}
