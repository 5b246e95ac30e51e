package analysis

import "strings"

const (
	FeedbackAccuracyExcellent = "Excellent accuracy! Your color recognition is very sharp."
	FeedbackAccuracyGood      = "Good accuracy. Keep focusing on the ink color, not the word meaning."
	FeedbackAccuracyLow       = "Focus on identifying the ink color, not reading the word."

	FeedbackSpeedFast = "Impressive speed! You're processing visual information quickly."
	FeedbackSpeedGood = "Good response time. With practice, you can get even faster."
	FeedbackSpeedSlow = "Try to respond more quickly while maintaining accuracy."

	FeedbackConsistencyHigh = "Your responses are very consistent throughout the test."
	FeedbackConsistencyFair = "Fairly consistent performance with some variation."
	FeedbackConsistencyLow  = "Your response times varied quite a bit. Try to maintain a steady pace."

	FeedbackImproved = "Great improvement during the test! You adapted well."
	FeedbackDeclined = "Your performance decreased slightly toward the end. Consider taking short breaks."
)

// Feedback builds one sentence per category in the order accuracy, speed,
// consistency, then an improvement sentence only when the change exceeds 10%.
func Feedback(accuracy, rtMean, consistencyScore, improvement float64) string {
	parts := make([]string, 0, 4)

	switch {
	case accuracy >= 90:
		parts = append(parts, FeedbackAccuracyExcellent)
	case accuracy >= 70:
		parts = append(parts, FeedbackAccuracyGood)
	default:
		parts = append(parts, FeedbackAccuracyLow)
	}

	switch {
	case rtMean < 1000:
		parts = append(parts, FeedbackSpeedFast)
	case rtMean < 2000:
		parts = append(parts, FeedbackSpeedGood)
	default:
		parts = append(parts, FeedbackSpeedSlow)
	}

	switch {
	case consistencyScore >= 80:
		parts = append(parts, FeedbackConsistencyHigh)
	case consistencyScore >= 60:
		parts = append(parts, FeedbackConsistencyFair)
	default:
		parts = append(parts, FeedbackConsistencyLow)
	}

	if improvement > 10 {
		parts = append(parts, FeedbackImproved)
	} else if improvement < -10 {
		parts = append(parts, FeedbackDeclined)
	}

	return strings.Join(parts, " ")
}
