package entity

var valuableTags = []string{"Dream Company", "High Salary", "Referral"}

// Score 0~100 的投递价值评分：薪资、优先级、标签三项加在 50 分基础上
func (a *Application) Score() int {
	score := 50

	if a.SalaryMax != nil && *a.SalaryMax > 0 {
		switch s := *a.SalaryMax; {
		case s >= 150000:
			score += 25
		case s >= 100000:
			score += 20
		case s >= 75000:
			score += 15
		case s >= 50000:
			score += 10
		default:
			score += 5
		}
	}

	switch a.Priority {
	case PriorityHigh:
		score += 15
	case PriorityMedium:
		score += 10
	default:
		score += 5
	}

	matched := 0
	for _, t := range valuableTags {
		if a.HasTag(t) {
			matched++
		}
	}
	score += min(matched*5, 10)

	return min(score, 100)
}
