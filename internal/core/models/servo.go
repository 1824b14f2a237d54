package models

// ServoType is the actuation role of a servo.
type ServoType uint8

const (
	ServoBase ServoType = iota
	ServoJoint
)

var servoTypeNames = names[ServoType]{"BASE", "JOINT"}

func AllServoTypes() []ServoType { return []ServoType{ServoBase, ServoJoint} }

func (s ServoType) String() string { return servoTypeNames.format("ServoType", s) }

func ParseServoType(s string) (ServoType, error) {
	return servoTypeNames.parse("servo type", s)
}

func (s ServoType) MarshalText() ([]byte, error) {
	return servoTypeNames.marshal("ServoType", s)
}

func (s *ServoType) UnmarshalText(text []byte) error {
	v, err := ParseServoType(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
