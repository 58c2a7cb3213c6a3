package core

// ScreenStack holds the overlay screens above the home screen, top last.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

// Replace swaps the top screen for next; a no-op on an empty stack.
func (s *ScreenStack) Replace(next Screen) {
	if len(s.items) == 0 || next == nil {
		return
	}
	s.items[len(s.items)-1] = next
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
