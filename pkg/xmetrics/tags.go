package xmetrics

type IMetricsTag interface {
	Tag() []string
}

type metricsTag struct {
	tags []string
}

func (m *metricsTag) Tag() []string {
	return m.tags
}

// subject metrics
type subjectMetrics struct {
	metricsTag
}

func SubjectMetrics() *subjectMetrics {
	return &subjectMetrics{
		metricsTag: metricsTag{[]string{"subject"}},
	}
}

func (s *subjectMetrics) Attach() IMetricsTag {
	s.tags = append(s.tags, "attach")
	return s
}

func (s *subjectMetrics) Detach() IMetricsTag {
	s.tags = append(s.tags, "detach")
	return s
}

func (s *subjectMetrics) Notify() IMetricsTag {
	s.tags = append(s.tags, "notify")
	return s
}

func (s *subjectMetrics) State() IMetricsTag {
	s.tags = append(s.tags, "state")
	return s
}

func (s *subjectMetrics) Observers() IMetricsTag {
	s.tags = append(s.tags, "observers")
	return s
}

// observer metrics
type observerMetrics struct {
	metricsTag
}

func ObserverMetrics() *observerMetrics {
	return &observerMetrics{
		metricsTag: metricsTag{[]string{"observer"}},
	}
}

func (o *observerMetrics) Update() IMetricsTag {
	o.tags = append(o.tags, "update")
	return o
}
