package session

// Sound receives lifecycle cues
type Sound interface {
	PlayFinalize()
	PlayDiscard()
	PlayRestart()
}

type nopSound struct{}

func (nopSound) PlayFinalize() {}
func (nopSound) PlayDiscard()  {}
func (nopSound) PlayRestart()  {}
