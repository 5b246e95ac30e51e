package analysis

var (
	accuracyRecommendations = []string{
		"Practice ignoring the word meaning and focus only on the ink color.",
		"Try saying the color out loud before selecting your answer.",
	}
	speedRecommendations = []string{
		"Work on quick visual recognition by practicing daily.",
		"Try to respond instinctively rather than overthinking.",
	}
	consistencyRecommendations = []string{
		"Maintain a steady breathing pattern during the test.",
		"Find a consistent rhythm for your responses.",
	}
	encouragementRecommendations = []string{
		"Great job! Keep practicing to maintain your sharp cognitive skills.",
		"Try increasing the difficulty level for a greater challenge.",
	}
)

// Recommend returns two recommendations for every failing threshold, checked
// in the order accuracy, time, consistency. When nothing fails it returns two
// encouragements, so the result is never empty.
func Recommend(accuracy, avgTime, consistencyScore float64) []string {
	var recs []string

	if accuracy < 80 {
		recs = append(recs, accuracyRecommendations...)
	}
	if avgTime > 1500 {
		recs = append(recs, speedRecommendations...)
	}
	if consistencyScore < 70 {
		recs = append(recs, consistencyRecommendations...)
	}

	if len(recs) == 0 {
		recs = append(recs, encouragementRecommendations...)
	}

	return recs
}
