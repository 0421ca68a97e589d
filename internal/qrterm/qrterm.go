// Package qrterm рисует QR-коды текстом для вывода в терминал.
package qrterm

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"

	"rsc.io/qr"
)

// Options — параметры отрисовки.
type Options struct {
	Level   qr.Level // уровень коррекции ошибок
	Border  int      // ширина quiet zone в модулях
	Invert  bool     // тёмные модули рисуются пробелом (под тёмный фон терминала)
	Compact bool     // две строки модулей на одну строку текста (полублоки)
}

// DefaultOptions — фиксированные параметры RenderText/Lines.
func DefaultOptions() Options {
	return Options{Level: qr.L, Border: 2, Invert: true}
}

// один символ на модуль
const (
	ink   = "█"
	blank = " "
)

// полублоки: индекс = верх | низ<<1
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// RenderText кодирует data и возвращает QR-код строками без пустых строк по краям.
// Ошибку переполнения ёмкости отдаёт как есть от кодировщика.
func RenderText(data string) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, data, DefaultOptions()); err != nil {
		return "", err
	}
	return strings.Trim(sb.String(), "\n"), nil
}

// Lines — то же, что RenderText, но построчно.
// Код рисуется целиком до выдачи первой строки.
func Lines(data string) (iter.Seq[string], error) {
	text, err := RenderText(data)
	if err != nil {
		return nil, err
	}
	return strings.SplitSeq(text, "\n"), nil
}

// Write кодирует data и пишет ASCII-представление в w, каждая строка с '\n'.
func Write(w io.Writer, data string, opts Options) error {
	if opts.Border < 0 {
		return errors.New("qrterm: border must not be negative")
	}
	code, err := qr.Encode(data, opts.Level)
	if err != nil {
		return err
	}

	g := grid{code: code, border: opts.Border, invert: opts.Invert}
	bw := bufio.NewWriter(w)
	lo, hi := -opts.Border, code.Size+opts.Border

	if opts.Compact {
		for y := lo; y < hi; y += 2 {
			for x := lo; x < hi; x++ {
				idx := 0
				if g.inked(x, y) {
					idx |= 1
				}
				if g.inked(x, y+1) {
					idx |= 2
				}
				bw.WriteString(halfBlocks[idx])
			}
			bw.WriteByte('\n')
		}
		return bw.Flush()
	}

	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			if g.inked(x, y) {
				bw.WriteString(ink)
			} else {
				bw.WriteString(blank)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

type grid struct {
	code   *qr.Code
	border int
	invert bool
}

// inked сообщает, рисуется ли символ в клетке (x, y).
// Клетки за пределами рамки (добивка нечётной строки в Compact) пустые.
func (g grid) inked(x, y int) bool {
	if y >= g.code.Size+g.border {
		return false
	}
	// Black вне матрицы возвращает false — рамка светлая
	black := g.code.Black(x, y)
	if g.invert {
		return !black
	}
	return black
}
