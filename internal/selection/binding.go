package selection

// Binding scopes selection operations to the page currently on screen, so UI
// code never threads the page number through every call.
type Binding struct {
	state *State
	page  int
}

// Bind returns a Binding for page. Bindings are cheap; callers build a fresh
// one whenever the displayed page changes.
func (s *State) Bind(page int) Binding {
	return Binding{state: s, page: page}
}

// Page returns the bound page number.
func (b Binding) Page() int {
	return b.page
}

// Select marks id as selected on the bound page.
func (b Binding) Select(id int) {
	b.state.Select(b.page, id)
}

// Deselect removes id from the bound page.
func (b Binding) Deselect(id int) {
	b.state.Deselect(b.page, id)
}

// Toggle flips id's selection on the bound page and reports the new state.
func (b Binding) Toggle(id int) bool {
	if b.state.IsSelected(id) {
		b.state.Deselect(b.page, id)
		return false
	}
	b.state.Select(b.page, id)
	return true
}

// SelectAll replaces the bound page's selection with ids. Pass the complete
// current-page id list; a partial list silently drops the omitted ids from
// this page.
func (b Binding) SelectAll(ids []int) {
	b.state.SelectPage(b.page, ids)
}

// DeselectAll removes every selection on the bound page.
func (b Binding) DeselectAll() {
	b.state.DeselectPage(b.page)
}

// IsSelected reports global selection membership for id.
func (b Binding) IsSelected(id int) bool {
	return b.state.IsSelected(id)
}

// Count returns how many rows are selected on the bound page.
func (b Binding) Count() int {
	return len(b.state.PageIDs(b.page))
}
