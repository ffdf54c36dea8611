package screens

import "fmt"

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalCreate
	ModalEdit
	ModalSubmitting
)

func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalCreate:
		return "open-create"
	case ModalEdit:
		return "open-edit"
	case ModalSubmitting:
		return "submitting"
	}
	return fmt.Sprintf("ModalState(%d)", int(s))
}

// Modal tracks the create/edit dialog of a screen:
// closed -> open (create|edit) -> submitting -> closed on success, or back
// to the open state on failure.
type Modal struct {
	state  ModalState
	opened ModalState
	editID uint
}

func (m *Modal) State() ModalState { return m.state }

func (m *Modal) IsOpen() bool {
	return m.state == ModalCreate || m.state == ModalEdit
}

func (m *Modal) OpenCreate() {
	m.state, m.opened, m.editID = ModalCreate, ModalCreate, 0
}

func (m *Modal) OpenEdit(id uint) {
	m.state, m.opened, m.editID = ModalEdit, ModalEdit, id
}

// EditingID is the id of the record being edited, if any.
func (m *Modal) EditingID() (uint, bool) {
	return m.editID, m.opened == ModalEdit && m.state != ModalClosed
}

// Submit moves an open modal to submitting.
func (m *Modal) Submit() error {
	if m.state == ModalSubmitting {
		return fmt.Errorf("%w: already submitting", ErrModalClosed)
	}
	if !m.IsOpen() {
		return ErrModalClosed
	}
	m.state = ModalSubmitting
	return nil
}

func (m *Modal) Succeed() { m.Close() }

func (m *Modal) Fail() {
	if m.state == ModalSubmitting {
		m.state = m.opened
	}
}

func (m *Modal) Close() {
	m.state, m.opened, m.editID = ModalClosed, ModalClosed, 0
}
