package insights

import (
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/format"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
)

const (
	excellentCompletionRate = 75.0
	onTrackCompletionRate   = 50.0

	strongMoodAverage   = 7.0
	moderateMoodAverage = 5.0
)

// Generate maps a snapshot to its insights in a fixed order: mood trend, task
// completion, check-in streak and the mood average band when it applies.
func Generate(snapshot domain.StatisticsSnapshot) []string {
	insights := []string{
		trendInsight(snapshot),
		completionInsight(snapshot.Tasks.CompletionRate),
		streakInsight(snapshot.CheckIns.CurrentStreak),
	}
	if msg, ok := averageInsight(snapshot.Mood.Average); ok {
		insights = append(insights, msg)
	}
	return insights
}

func trendInsight(snapshot domain.StatisticsSnapshot) string {
	switch snapshot.Mood.Trend {
	case domain.TrendImproving:
		return "Your mood has been improving over this period. Keep up the positive momentum!"
	case domain.TrendDeclining:
		return "Your mood has been declining recently. Consider reaching out to someone you trust or a professional for support."
	default:
		return fmt.Sprintf("Your mood has remained stable with an average of %s over %s.",
			format.AverageScore(snapshot.Mood.Average), format.Days(snapshot.PeriodDays()))
	}
}

func completionInsight(rate float64) string {
	switch {
	case rate >= excellentCompletionRate:
		return fmt.Sprintf("Excellent task completion rate of %s! You're staying on top of your goals.", format.Rate(rate))
	case rate >= onTrackCompletionRate:
		return fmt.Sprintf("You're on track with a %s task completion rate.", format.Rate(rate))
	default:
		return fmt.Sprintf("Your task completion rate is %s. Try breaking larger tasks into smaller, manageable steps.", format.Rate(rate))
	}
}

func streakInsight(current int) string {
	if current > 0 {
		return fmt.Sprintf("Great job! You've kept a check-in streak of %s.", format.Days(current))
	}
	return "Start a new check-in streak today to build a consistent habit."
}

func averageInsight(avg float64) (string, bool) {
	switch {
	case avg >= strongMoodAverage:
		return "Your average mood indicates strong overall wellbeing.", true
	case avg >= moderateMoodAverage:
		return "Your average mood indicates moderate wellbeing. Small daily routines can help lift it further.", true
	default:
		return "", false
	}
}
