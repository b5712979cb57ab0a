package rquest

import (
	"github.com/pkg/errors"

	"roguesave/rsave/lbytes"
	"roguesave/rsave/rerr"
	"roguesave/rsave/rversion"
)

// Decode reads one quest. Saves older than 0.6.0 declare events but do
// not store them.
func Decode(reader *lbytes.Reader, gate rversion.Gate, eventMax int) (*Quest, error) {
	quest, err := lbytes.DecodeSchema[Quest](reader, gate, Schema)
	if err != nil {
		return nil, errors.Wrap(err, "rquest.Decode error")
	}
	if quest.Events > eventMax {
		return nil, rerr.Malformed("quests", "events", int64(quest.Events), int64(eventMax))
	}
	if gate.OlderThan(rversion.V060) {
		return quest, nil
	}

	quest.Event = make([]Event, 0, quest.Events)
	for i := 0; i < quest.Events; i++ {
		event, err := lbytes.DecodeSchema[Event](reader, gate, EventSchema)
		if err != nil {
			return nil, errors.Wrapf(err, "rquest.Decode error reading event %d", i)
		}
		quest.Event = append(quest.Event, *event)
	}
	return quest, nil
}

func Encode(writer *lbytes.Writer, gate rversion.Gate, quest Quest) error {
	if !gate.OlderThan(rversion.V060) {
		quest.Events = len(quest.Event)
	}
	if err := lbytes.EncodeSchema(writer, gate, Schema, quest); err != nil {
		return errors.Wrap(err, "rquest.Encode error")
	}
	if gate.OlderThan(rversion.V060) {
		return nil
	}
	for i, event := range quest.Event {
		if err := lbytes.EncodeSchema(writer, gate, EventSchema, event); err != nil {
			return errors.Wrapf(err, "rquest.Encode error writing event %d", i)
		}
	}
	return nil
}
