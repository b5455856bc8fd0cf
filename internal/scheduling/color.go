package scheduling

// studentPalette фиксированная палитра для выделения учеников в расписании
var studentPalette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#EC4899",
	"#14B8A6",
	"#F97316",
	"#6366F1",
	"#84CC16",
}

// StudentColor детерминированно выбирает цвет ученика из палитры.
// Хеш зависит от порядка символов: h = c + (h << 5) - h с переполнением int32.
func StudentColor(studentID string) string {
	var h int32
	for _, c := range studentID {
		h = int32(c) + (h << 5) - h
	}

	idx := int(h) % len(studentPalette)
	if idx < 0 {
		idx = -idx
	}
	return studentPalette[idx]
}

// StudentColor цвет ученика для отображения его записей
func (s *Store) StudentColor(studentID string) string {
	return StudentColor(studentID)
}
