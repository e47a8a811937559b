// internal/srs/sm2.go
//
// SM-2 (SuperMemo-2) の決定的スケジューリング。
// 純粋関数のみで構成し、I/Oや隠れた状態を持たない。
// 拡張経路 (グラフ・埋め込み) が全て停止しても、ここだけで
// 有効な復習スケジュールを再構築できることが不変条件。
package srs

import (
	"math"
	"time"

	"go_5_vocab_srs/internal/model"
)

// Quality は SM-2 の回答品質 (0-5)
type Quality int

const (
	QualityBlackout   Quality = 0 // 完全に忘れている
	QualityIncorrect  Quality = 1 // 不正解
	QualityFamiliar   Quality = 2 // 不正解だが見覚えあり
	QualityDifficult  Quality = 3 // 正解 (かなり時間がかかった)
	QualityHesitation Quality = 4 // 正解 (少し迷った)
	QualityPerfect    Quality = 5 // 即答で正解
)

// 回答時間から品質を割り当てる閾値 (ms)
const (
	fastResponseMs   = 5000
	mediumResponseMs = 15000
)

// DeriveQuality は正誤と回答時間から SM-2 の品質値を導出します。
// 速い正解ほど高品質。不正解は回答時間によらず 1。
func DeriveQuality(success bool, responseTimeMs int) Quality {
	if !success {
		return QualityIncorrect
	}
	switch {
	case responseTimeMs <= fastResponseMs:
		return QualityPerfect
	case responseTimeMs <= mediumResponseMs:
		return QualityHesitation
	default:
		return QualityDifficult
	}
}

// ComputeNext は復習結果を適用した新しいカード状態を返します。
// 入力カードは変更しない。同じ入力に対して常に同じ出力を返す。
// 範囲外の easeFactor / interval はエラーにせずクランプする。
func ComputeNext(card model.ReviewCard, success bool, responseTimeMs int, now time.Time) model.ReviewCard {
	card.EaseFactor = clampEase(card.EaseFactor)
	if card.IntervalDays < 0 {
		card.IntervalDays = 0
	}
	if card.Repetitions < 0 {
		card.Repetitions = 0
	}

	if success {
		quality := float64(DeriveQuality(success, responseTimeMs))
		card.Repetitions++
		card.EaseFactor = clampEase(card.EaseFactor + (0.1 - (5-quality)*(0.08+(5-quality)*0.02)))

		switch card.Repetitions {
		case 1:
			card.IntervalDays = 1
		case 2:
			card.IntervalDays = 6
		default:
			card.IntervalDays = int(math.Round(float64(card.IntervalDays) * card.EaseFactor))
		}
		if card.IntervalDays < 1 {
			card.IntervalDays = 1
		}
	} else {
		card.Repetitions = 0
		card.IntervalDays = 1
		card.EaseFactor = math.Max(model.MinEaseFactor, card.EaseFactor-0.2)
	}

	card.NextReview = now.AddDate(0, 0, card.IntervalDays)
	reviewedAt := now
	card.LastReviewedAt = &reviewedAt
	return card
}

func clampEase(ease float64) float64 {
	if ease == 0 {
		return model.DefaultEaseFactor
	}
	if ease < model.MinEaseFactor {
		return model.MinEaseFactor
	}
	if ease > model.MaxEaseFactor {
		return model.MaxEaseFactor
	}
	return ease
}
